package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/model"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

type fakeMatchStore struct {
	offers  []db.Offer
	workers []db.Worker
}

func (f *fakeMatchStore) ListActiveOffers(_ context.Context) ([]db.Offer, error) {
	return f.offers, nil
}

func (f *fakeMatchStore) ListWorkers(_ context.Context) ([]db.Worker, error) {
	return f.workers, nil
}

func TestFindMatchesForOffer_ReturnsReciprocalMatchesWithOwners(t *testing.T) {
	store := &fakeMatchStore{
		workers: []db.Worker{boardWorker("w1"), boardWorker("w2")},
		offers: []db.Offer{
			{
				ID: "mine", OwnerID: "w1",
				SurrenderFrom: "2024-04-10", SurrenderTo: "2024-04-12",
				DesireFrom: "2024-04-20", DesireTo: "2024-04-22",
				Active: true,
			},
			{
				ID: "theirs", OwnerID: "w2",
				SurrenderFrom: "2024-04-21", SurrenderTo: "2024-04-21",
				DesireFrom: "2024-04-11", DesireTo: "2024-04-11",
				Active: true,
			},
		},
	}

	result, err := FindMatchesForOffer(context.Background(), store, zap.NewNop(), "mine")

	require.NoError(t, err)
	assert.Equal(t, "mine", result.Offer.ID)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "theirs", result.Matches[0].Offer.ID)
	assert.Equal(t, "w2", result.Matches[0].Owner.ID)
	assert.Equal(t, model.QualityPerfect, result.Matches[0].Quality)
}

func TestFindMatchesForOffer_UnknownOfferFails(t *testing.T) {
	store := &fakeMatchStore{}

	_, err := FindMatchesForOffer(context.Background(), store, zap.NewNop(), "missing")

	assert.Error(t, err)
}

func TestFindMatchesForOffer_NoOverlapMeansNoMatches(t *testing.T) {
	store := &fakeMatchStore{
		workers: []db.Worker{boardWorker("w1"), boardWorker("w2")},
		offers: []db.Offer{
			{
				ID: "mine", OwnerID: "w1",
				SurrenderFrom: "2024-04-10", SurrenderTo: "2024-04-12",
				DesireFrom: "2024-04-20", DesireTo: "2024-04-22",
				Active: true,
			},
			{
				ID: "theirs", OwnerID: "w2",
				SurrenderFrom: "2024-05-01", SurrenderTo: "2024-05-02",
				DesireFrom: "2024-05-10", DesireTo: "2024-05-11",
				Active: true,
			},
		},
	}

	result, err := FindMatchesForOffer(context.Background(), store, zap.NewNop(), "mine")

	require.NoError(t, err)
	assert.Empty(t, result.Matches)
}

func TestListWorkers_SortedByNameWithCatalog(t *testing.T) {
	store := &fakeDirectoryStore{
		workers: []db.Worker{
			{ID: "w2", Name: "Zoe"},
			{ID: "w1", Name: "Ana"},
		},
		specialties: []db.Specialty{{Code: "01", Name: "Grúa"}},
	}

	result, err := ListWorkers(context.Background(), store, zap.NewNop())

	require.NoError(t, err)
	require.Len(t, result.Workers, 2)
	assert.Equal(t, "Ana", result.Workers[0].Name)
	assert.Equal(t, "Zoe", result.Workers[1].Name)
	require.Len(t, result.Specialties, 1)
	assert.Equal(t, "Grúa", result.Specialties[0].Name)
}

type fakeDirectoryStore struct {
	workers     []db.Worker
	specialties []db.Specialty
}

func (f *fakeDirectoryStore) ListWorkers(_ context.Context) ([]db.Worker, error) {
	return f.workers, nil
}

func (f *fakeDirectoryStore) ListSpecialties(_ context.Context) ([]db.Specialty, error) {
	return f.specialties, nil
}
