package db

import "context"

// OfferStore defines the offer operations the services need from the
// storage collaborator.
type OfferStore interface {
	CreateOffer(ctx context.Context, offer *Offer) error
	UpdateOffer(ctx context.Context, offer *Offer) error
	DeleteOffer(ctx context.Context, offerID string) error
	ListActiveOffers(ctx context.Context) ([]Offer, error)
	ListOffersByOwner(ctx context.Context, ownerID string) ([]Offer, error)
}

// WorkerStore defines the profile lookups.
type WorkerStore interface {
	GetWorker(ctx context.Context, workerID string) (*Worker, error)
	ListWorkers(ctx context.Context) ([]Worker, error)
	ListSpecialties(ctx context.Context) ([]Specialty, error)
}

// UsageStore records per-badge last-activity pings.
type UsageStore interface {
	UpsertUsageActivity(ctx context.Context, activity UsageActivity) error
}

// Database is the full storage surface the CLI wires up.
// postgres.DB implements this interface.
type Database interface {
	OfferStore
	WorkerStore
	UsageStore
}
