package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/pkg/db"
)

// ListWorkersStore defines the database operations needed to list the directory
type ListWorkersStore interface {
	ListWorkers(ctx context.Context) ([]db.Worker, error)
	ListSpecialties(ctx context.Context) ([]db.Specialty, error)
}

// ListWorkersResult contains the worker directory and specialty catalog
type ListWorkersResult struct {
	Workers     []db.Worker
	Specialties []db.Specialty
}

// ListWorkers returns the worker directory sorted by name, together
// with the specialty catalog for display.
func ListWorkers(ctx context.Context, database ListWorkersStore, logger *zap.Logger) (*ListWorkersResult, error) {
	logger.Debug("Listing workers")

	workers, err := database.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}

	specialties, err := database.ListSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specialties: %w", err)
	}

	sort.SliceStable(workers, func(i, j int) bool {
		return workers[i].Name < workers[j].Name
	})

	logger.Debug("Worker directory loaded",
		zap.Int("workers", len(workers)),
		zap.Int("specialties", len(specialties)))

	return &ListWorkersResult{Workers: workers, Specialties: specialties}, nil
}
