package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/matching"
	"github.com/TheViking816/DescansosCPE/pkg/core/offerform"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

// SubmitOfferStore defines the database operations needed to submit offers
type SubmitOfferStore interface {
	ListActiveOffers(ctx context.Context) ([]db.Offer, error)
	CreateOffer(ctx context.Context, offer *db.Offer) error
}

// SubmitOfferResult is the outcome of a submission. ValidationErrors
// being non-empty means nothing was created; Created otherwise holds
// every offer minted from the form, all sharing one batch timestamp.
type SubmitOfferResult struct {
	Created          []db.Offer
	ValidationErrors []string
}

// SubmitOffer expands the form into offer drafts, validates every draft
// against the policy and the worker's existing offers, and creates them
// all-or-nothing. Rule violations are reported in the result, not as an
// error; errors are reserved for store failures.
func SubmitOffer(
	ctx context.Context,
	database SubmitOfferStore,
	logger *zap.Logger,
	policy matching.Policy,
	workerID string,
	form offerform.Form,
) (*SubmitOfferResult, error) {
	logger.Debug("Submitting offer form",
		zap.String("worker_id", workerID),
		zap.Int("surrender_ranges", len(form.Surrender)),
		zap.Int("desire_ranges", len(form.Desire)))

	build := offerform.BuildOfferPayloads(form)
	if len(build.Errors) > 0 {
		logger.Debug("Offer form rejected by builder", zap.Strings("errors", build.Errors))
		return &SubmitOfferResult{ValidationErrors: build.Errors}, nil
	}

	logger.Debug("Fetching active offers for validation")
	existing, err := database.ListActiveOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active offers: %w", err)
	}
	existingModels := db.OffersToModel(existing)

	// Validate every draft; collect each distinct violation once so the
	// worker sees the full picture in one pass.
	var validationErrors []string
	seenErrors := make(map[string]bool)
	for _, draft := range build.Payloads {
		validation := policy.Validate(workerID, draft.ToOffer(workerID), existingModels)
		for _, msg := range validation.Errors {
			if !seenErrors[msg] {
				seenErrors[msg] = true
				validationErrors = append(validationErrors, msg)
			}
		}
	}
	if len(validationErrors) > 0 {
		logger.Info("Offer submission failed validation",
			zap.String("worker_id", workerID),
			zap.Strings("errors", validationErrors))
		return &SubmitOfferResult{ValidationErrors: validationErrors}, nil
	}

	// One timestamp for the whole batch; the board groups rows sharing
	// owner and creation time back into a single display unit.
	batchCreatedAt := time.Now().UTC().Format(time.RFC3339)

	created := make([]db.Offer, 0, len(build.Payloads))
	for _, draft := range build.Payloads {
		offer := db.Offer{
			ID:            uuid.New().String(),
			OwnerID:       workerID,
			SurrenderFrom: draft.SurrenderFrom,
			SurrenderTo:   draft.SurrenderTo,
			DesireFrom:    draft.DesireFrom,
			DesireTo:      draft.DesireTo,
			CreatedAt:     batchCreatedAt,
			Active:        true,
		}
		if err := database.CreateOffer(ctx, &offer); err != nil {
			return nil, fmt.Errorf("failed to create offer: %w", err)
		}
		created = append(created, offer)
	}

	logger.Info("Offers published",
		zap.String("worker_id", workerID),
		zap.Int("count", len(created)))

	return &SubmitOfferResult{Created: created}, nil
}
