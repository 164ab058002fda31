package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/matching"
	"github.com/TheViking816/DescansosCPE/pkg/core/model"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

// FindMatchesStore defines the database operations needed to find matches
type FindMatchesStore interface {
	ListActiveOffers(ctx context.Context) ([]db.Offer, error)
	ListWorkers(ctx context.Context) ([]db.Worker, error)
}

// MatchEntry pairs a matched offer with its owner's profile for display
type MatchEntry struct {
	Offer   model.Offer
	Owner   model.Worker
	Quality model.MatchQuality
}

// FindMatchesResult contains the ordered match list for one offer
type FindMatchesResult struct {
	Offer   model.Offer
	Matches []MatchEntry
}

// FindMatchesForOffer locates the offer in the active pool and returns
// its reciprocal matches, best quality first.
func FindMatchesForOffer(
	ctx context.Context,
	database FindMatchesStore,
	logger *zap.Logger,
	offerID string,
) (*FindMatchesResult, error) {
	logger.Debug("Finding matches", zap.String("offer_id", offerID))

	offers, err := database.ListActiveOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active offers: %w", err)
	}

	pool := db.OffersToModel(offers)
	var target *model.Offer
	for i := range pool {
		if pool[i].ID == offerID {
			target = &pool[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("offer %s not found in the active pool", offerID)
	}

	workers, err := database.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	workersByID := db.WorkersByID(workers)

	matches := matching.FindMatches(*target, pool, workersByID)
	logger.Debug("Matches computed",
		zap.String("offer_id", offerID),
		zap.Int("count", len(matches)))

	entries := make([]MatchEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, MatchEntry{
			Offer:   m.Offer,
			Owner:   workersByID[m.Offer.OwnerID],
			Quality: m.Quality,
		})
	}

	return &FindMatchesResult{Offer: *target, Matches: entries}, nil
}
