package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/core/feed"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

// ViewBoardStore defines the database operations needed to build the board
type ViewBoardStore interface {
	ListActiveOffers(ctx context.Context) ([]db.Offer, error)
	GetWorker(ctx context.Context, workerID string) (*db.Worker, error)
	ListWorkers(ctx context.Context) ([]db.Worker, error)
}

// ViewBoardResult contains the ranked, grouped board for display
type ViewBoardResult struct {
	Board        feed.Board
	Viewer       db.Worker
	TotalOffers  int
	ActiveCount  int
	ExpiredCount int
}

// ViewBoard fetches a fresh snapshot of the offer pool and worker
// directory and computes the ranked board for the viewing worker. Every
// call recomputes from scratch, so the watch loop can invoke it on each
// tick.
func ViewBoard(
	ctx context.Context,
	database ViewBoardStore,
	logger *zap.Logger,
	viewerID string,
	filters feed.Filters,
) (*ViewBoardResult, error) {
	logger.Debug("Building board", zap.String("viewer_id", viewerID))

	viewer, err := database.GetWorker(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}
	if viewer == nil {
		return nil, fmt.Errorf("worker %s not found", viewerID)
	}

	offers, err := database.ListActiveOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active offers: %w", err)
	}
	logger.Debug("Fetched active offers", zap.Int("count", len(offers)))

	workers, err := database.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	logger.Debug("Fetched worker profiles", zap.Int("count", len(workers)))

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	board := feed.Build(feed.Input{
		Viewer:  viewer.ToModel(),
		Offers:  db.OffersToModel(offers),
		Workers: db.WorkersByID(workers),
		Filters: filters,
		Today:   today,
	})

	logger.Debug("Board built",
		zap.Int("active_groups", len(board.Active)),
		zap.Int("expired_groups", len(board.Expired)))

	return &ViewBoardResult{
		Board:        board,
		Viewer:       *viewer,
		TotalOffers:  len(offers),
		ActiveCount:  len(board.Active),
		ExpiredCount: len(board.Expired),
	}, nil
}
