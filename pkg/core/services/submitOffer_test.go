package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/matching"
	"github.com/TheViking816/DescansosCPE/pkg/core/offerform"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

type fakeSubmitStore struct {
	active    []db.Offer
	created   []db.Offer
	listErr   error
	createErr error
}

func (f *fakeSubmitStore) ListActiveOffers(_ context.Context) ([]db.Offer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.active, nil
}

func (f *fakeSubmitStore) CreateOffer(_ context.Context, offer *db.Offer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *offer)
	return nil
}

func validForm() offerform.Form {
	return offerform.Form{
		Surrender: []offerform.DayRange{{From: "2024-04-10", To: "2024-04-11"}},
		Desire:    []offerform.DayRange{{From: "2024-04-20", To: "2024-04-21"}},
	}
}

func TestSubmitOffer_CreatesSingleOffer(t *testing.T) {
	store := &fakeSubmitStore{}

	result, err := SubmitOffer(context.Background(), store, zap.NewNop(), matching.DefaultPolicy(), "worker-1", validForm())

	require.NoError(t, err)
	assert.Empty(t, result.ValidationErrors)
	require.Len(t, result.Created, 1)

	created := result.Created[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "worker-1", created.OwnerID)
	assert.Equal(t, "2024-04-10", created.SurrenderFrom)
	assert.Equal(t, "2024-04-21", created.DesireTo)
	assert.True(t, created.Active)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, store.created, result.Created)
}

func TestSubmitOffer_BatchSharesOneTimestampAndDistinctIDs(t *testing.T) {
	store := &fakeSubmitStore{}
	form := offerform.Form{
		Surrender: []offerform.DayRange{{From: "2024-04-10"}, {From: "2024-04-12"}},
		Desire:    []offerform.DayRange{{From: "2024-04-20"}, {From: "2024-04-22"}},
	}

	result, err := SubmitOffer(context.Background(), store, zap.NewNop(), matching.DefaultPolicy(), "worker-1", form)

	require.NoError(t, err)
	require.Len(t, result.Created, 4)

	ids := make(map[string]bool)
	for _, offer := range result.Created {
		assert.Equal(t, result.Created[0].CreatedAt, offer.CreatedAt)
		ids[offer.ID] = true
	}
	assert.Len(t, ids, 4)
}

func TestSubmitOffer_BuilderErrorsShortCircuit(t *testing.T) {
	store := &fakeSubmitStore{listErr: errors.New("should not be called")}

	result, err := SubmitOffer(context.Background(), store, zap.NewNop(), matching.DefaultPolicy(), "worker-1", offerform.Form{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Por favor rellena todas las fechas."}, result.ValidationErrors)
	assert.Empty(t, result.Created)
}

func TestSubmitOffer_ValidationFailureCreatesNothing(t *testing.T) {
	store := &fakeSubmitStore{}
	form := offerform.Form{
		Surrender: []offerform.DayRange{{From: "2024-04-11", To: "2024-04-10"}},
		Desire:    []offerform.DayRange{{From: "2024-04-20"}},
	}

	result, err := SubmitOffer(context.Background(), store, zap.NewNop(), matching.DefaultPolicy(), "worker-1", form)

	require.NoError(t, err)
	require.NotEmpty(t, result.ValidationErrors)
	assert.Contains(t, result.ValidationErrors, `La fecha "Tengo desde" no puede ser posterior a "Tengo hasta".`)
	assert.Empty(t, store.created)
}

func TestSubmitOffer_DuplicateViolationsReportedOnce(t *testing.T) {
	store := &fakeSubmitStore{}
	// Two drafts, both inverted on the surrender side: one message.
	form := offerform.Form{
		Surrender: []offerform.DayRange{{From: "2024-04-11", To: "2024-04-10"}},
		Desire:    []offerform.DayRange{{From: "2024-04-20"}, {From: "2024-04-22"}},
	}

	result, err := SubmitOffer(context.Background(), store, zap.NewNop(), matching.DefaultPolicy(), "worker-1", form)

	require.NoError(t, err)
	assert.Equal(t, []string{`La fecha "Tengo desde" no puede ser posterior a "Tengo hasta".`}, result.ValidationErrors)
}

func TestSubmitOffer_StoreFailurePropagates(t *testing.T) {
	store := &fakeSubmitStore{createErr: errors.New("insert failed")}

	result, err := SubmitOffer(context.Background(), store, zap.NewNop(), matching.DefaultPolicy(), "worker-1", validForm())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSubmitOffer_QuotaCountsExistingOffers(t *testing.T) {
	store := &fakeSubmitStore{active: []db.Offer{{
		ID:            "existing",
		OwnerID:       "worker-1",
		SurrenderFrom: "2024-04-01",
		SurrenderTo:   "2024-04-02",
		DesireFrom:    "2024-05-01",
		DesireTo:      "2024-05-02",
		Active:        true,
	}}}

	// Quota is assessed in the desire month, May: base 6, plus 2 days
	// already gained there, plus 3 more from this form = 11, over the
	// 7-day maximum.
	form := offerform.Form{
		Surrender: []offerform.DayRange{{From: "2024-04-10", To: "2024-04-12"}},
		Desire:    []offerform.DayRange{{From: "2024-05-10", To: "2024-05-12"}},
	}

	result, err := SubmitOffer(context.Background(), store, zap.NewNop(), matching.DefaultPolicy(), "worker-1", form)

	require.NoError(t, err)
	require.Len(t, result.ValidationErrors, 1)
	assert.Contains(t, result.ValidationErrors[0], "No puedes descansar más de 7 días al mes.")
	assert.Empty(t, store.created)
}
