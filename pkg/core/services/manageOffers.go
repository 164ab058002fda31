package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/matching"
	"github.com/TheViking816/DescansosCPE/pkg/core/offerform"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

// ManageOffersStore defines the database operations for a worker's own offers
type ManageOffersStore interface {
	ListActiveOffers(ctx context.Context) ([]db.Offer, error)
	ListOffersByOwner(ctx context.Context, ownerID string) ([]db.Offer, error)
	UpdateOffer(ctx context.Context, offer *db.Offer) error
	DeleteOffer(ctx context.Context, offerID string) error
}

// MyOffersResult lists a worker's own offers, newest first
type MyOffersResult struct {
	Offers []db.Offer
}

// ListMyOffers returns every offer owned by the worker, including ones
// no longer active.
func ListMyOffers(ctx context.Context, database ManageOffersStore, logger *zap.Logger, workerID string) (*MyOffersResult, error) {
	logger.Debug("Listing own offers", zap.String("worker_id", workerID))

	offers, err := database.ListOffersByOwner(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offers for worker %s: %w", workerID, err)
	}

	return &MyOffersResult{Offers: offers}, nil
}

// EditOfferResult is the outcome of an in-place edit. ValidationErrors
// non-empty means the offer was left untouched.
type EditOfferResult struct {
	Offer            *db.Offer
	ValidationErrors []string
}

// EditOffer replaces an offer's date ranges after re-validating them
// under the policy. The offer must exist and belong to workerID;
// ownership and creation time never change. The offer being edited is
// excluded from the existing set so its old ranges don't count against
// the quota projection.
func EditOffer(
	ctx context.Context,
	database ManageOffersStore,
	logger *zap.Logger,
	policy matching.Policy,
	workerID string,
	offerID string,
	ranges offerform.OfferDraft,
) (*EditOfferResult, error) {
	logger.Debug("Editing offer",
		zap.String("worker_id", workerID),
		zap.String("offer_id", offerID))

	target, err := findOwnedOffer(ctx, database, workerID, offerID)
	if err != nil {
		return nil, err
	}

	active, err := database.ListActiveOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active offers: %w", err)
	}
	existing := make([]db.Offer, 0, len(active))
	for _, o := range active {
		if o.ID != offerID {
			existing = append(existing, o)
		}
	}

	candidate := ranges.ToOffer(workerID)
	validation := policy.Validate(workerID, candidate, db.OffersToModel(existing))
	if !validation.Valid {
		logger.Info("Offer edit failed validation",
			zap.String("offer_id", offerID),
			zap.Strings("errors", validation.Errors))
		return &EditOfferResult{ValidationErrors: validation.Errors}, nil
	}

	target.SurrenderFrom = ranges.SurrenderFrom
	target.SurrenderTo = ranges.SurrenderTo
	target.DesireFrom = ranges.DesireFrom
	target.DesireTo = ranges.DesireTo

	if err := database.UpdateOffer(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update offer %s: %w", offerID, err)
	}

	logger.Info("Offer updated", zap.String("offer_id", offerID))
	return &EditOfferResult{Offer: target}, nil
}

// DeleteOwnOffer removes an offer after checking it belongs to the
// requesting worker.
func DeleteOwnOffer(ctx context.Context, database ManageOffersStore, logger *zap.Logger, workerID, offerID string) error {
	logger.Debug("Deleting offer",
		zap.String("worker_id", workerID),
		zap.String("offer_id", offerID))

	if _, err := findOwnedOffer(ctx, database, workerID, offerID); err != nil {
		return err
	}

	if err := database.DeleteOffer(ctx, offerID); err != nil {
		return fmt.Errorf("failed to delete offer %s: %w", offerID, err)
	}

	logger.Info("Offer deleted", zap.String("offer_id", offerID))
	return nil
}

func findOwnedOffer(ctx context.Context, database ManageOffersStore, workerID, offerID string) (*db.Offer, error) {
	offers, err := database.ListOffersByOwner(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offers for worker %s: %w", workerID, err)
	}

	for i := range offers {
		if offers[i].ID == offerID {
			return &offers[i], nil
		}
	}
	return nil, fmt.Errorf("offer %s not found among worker %s's offers", offerID, workerID)
}
