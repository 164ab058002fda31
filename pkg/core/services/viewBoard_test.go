package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/feed"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

type fakeBoardStore struct {
	offers     []db.Offer
	workers    []db.Worker
	offersErr  error
	workersErr error
}

func (f *fakeBoardStore) ListActiveOffers(_ context.Context) ([]db.Offer, error) {
	if f.offersErr != nil {
		return nil, f.offersErr
	}
	return f.offers, nil
}

func (f *fakeBoardStore) GetWorker(_ context.Context, workerID string) (*db.Worker, error) {
	for i := range f.workers {
		if f.workers[i].ID == workerID {
			return &f.workers[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBoardStore) ListWorkers(_ context.Context) ([]db.Worker, error) {
	if f.workersErr != nil {
		return nil, f.workersErr
	}
	return f.workers, nil
}

func boardWorker(id string) db.Worker {
	return db.Worker{
		ID:            id,
		Name:          "Worker " + id,
		RestGroup:     "A",
		RotationWeek:  "V",
		SpecialtyCode: "01",
	}
}

func TestViewBoard_BuildsBoardForViewer(t *testing.T) {
	store := &fakeBoardStore{
		workers: []db.Worker{boardWorker("me"), boardWorker("w2")},
		offers: []db.Offer{{
			ID:            "o1",
			OwnerID:       "w2",
			SurrenderFrom: "2030-01-10",
			SurrenderTo:   "2030-01-11",
			DesireFrom:    "2030-01-20",
			DesireTo:      "2030-01-21",
			CreatedAt:     "2024-03-01T10:00:00Z",
			Active:        true,
		}},
	}

	result, err := ViewBoard(context.Background(), store, zap.NewNop(), "me", feed.Filters{})

	require.NoError(t, err)
	assert.Equal(t, "me", result.Viewer.ID)
	assert.Equal(t, 1, result.TotalOffers)
	assert.Equal(t, 1, result.ActiveCount)
	assert.Equal(t, 0, result.ExpiredCount)
	require.Len(t, result.Board.Active, 1)
	assert.Equal(t, "o1", result.Board.Active[0].Offer.ID)
	assert.False(t, result.Board.Active[0].IsOwn)
}

func TestViewBoard_UnknownViewerFails(t *testing.T) {
	store := &fakeBoardStore{workers: []db.Worker{boardWorker("w2")}}

	_, err := ViewBoard(context.Background(), store, zap.NewNop(), "ghost", feed.Filters{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestViewBoard_PastOffersLandInExpired(t *testing.T) {
	store := &fakeBoardStore{
		workers: []db.Worker{boardWorker("me"), boardWorker("w2")},
		offers: []db.Offer{{
			ID:            "o1",
			OwnerID:       "w2",
			SurrenderFrom: "2020-01-10",
			SurrenderTo:   "2020-01-11",
			DesireFrom:    "2020-01-20",
			DesireTo:      "2020-01-21",
			CreatedAt:     "2020-01-01T10:00:00Z",
			Active:        true,
		}},
	}

	result, err := ViewBoard(context.Background(), store, zap.NewNop(), "me", feed.Filters{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.ActiveCount)
	assert.Equal(t, 1, result.ExpiredCount)
}

func TestViewBoard_StoreErrorPropagates(t *testing.T) {
	store := &fakeBoardStore{
		workers:   []db.Worker{boardWorker("me")},
		offersErr: errors.New("connection reset"),
	}

	_, err := ViewBoard(context.Background(), store, zap.NewNop(), "me", feed.Filters{})

	assert.Error(t, err)
}
