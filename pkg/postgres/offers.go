package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/TheViking816/DescansosCPE/pkg/core/model"
	"github.com/TheViking816/DescansosCPE/pkg/db"
)

const offerColumns = `id, user_id, tengo_desde, tengo_hasta, necesito_desde, necesito_hasta, created_at, activa`

// ListActiveOffers retrieves the live offer pool, newest first.
func (d *DB) ListActiveOffers(ctx context.Context) ([]db.Offer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offer
		WHERE activa
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active offers: %w", err)
	}
	defer rows.Close()

	return scanOffers(rows)
}

// ListOffersByOwner retrieves all of one worker's offers, newest first,
// including inactive ones.
func (d *DB) ListOffersByOwner(ctx context.Context, ownerID string) ([]db.Offer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offer
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return scanOffers(rows)
}

// CreateOffer inserts a new offer row.
func (d *DB) CreateOffer(ctx context.Context, offer *db.Offer) error {
	createdAt, err := time.Parse(time.RFC3339, offer.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO offer (id, user_id, tengo_desde, tengo_hasta, necesito_desde, necesito_hasta, created_at, activa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, offer.ID, offer.OwnerID, offer.SurrenderFrom, offer.SurrenderTo,
		offer.DesireFrom, offer.DesireTo, createdAt, offer.Active)
	if err != nil {
		return fmt.Errorf("failed to insert offer: %w", err)
	}
	return nil
}

// UpdateOffer replaces an offer's date ranges and active flag.
// Ownership and creation time are immutable.
func (d *DB) UpdateOffer(ctx context.Context, offer *db.Offer) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE offer
		SET tengo_desde = $2, tengo_hasta = $3, necesito_desde = $4, necesito_hasta = $5, activa = $6
		WHERE id = $1
	`, offer.ID, offer.SurrenderFrom, offer.SurrenderTo,
		offer.DesireFrom, offer.DesireTo, offer.Active)
	if err != nil {
		return fmt.Errorf("failed to update offer %s: %w", offer.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("offer %s not found", offer.ID)
	}
	return nil
}

// DeleteOffer removes an offer row.
func (d *DB) DeleteOffer(ctx context.Context, offerID string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM offer WHERE id = $1`, offerID); err != nil {
		return fmt.Errorf("failed to delete offer %s: %w", offerID, err)
	}
	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOffers(rows pgxRows) ([]db.Offer, error) {
	var offers []db.Offer
	for rows.Next() {
		var o db.Offer
		var tengoDesde, tengoHasta, necesitoDesde, necesitoHasta time.Time
		var createdAt time.Time
		if err := rows.Scan(&o.ID, &o.OwnerID, &tengoDesde, &tengoHasta,
			&necesitoDesde, &necesitoHasta, &createdAt, &o.Active); err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		o.SurrenderFrom = tengoDesde.Format(model.DateLayout)
		o.SurrenderTo = tengoHasta.Format(model.DateLayout)
		o.DesireFrom = necesitoDesde.Format(model.DateLayout)
		o.DesireTo = necesitoHasta.Format(model.DateLayout)
		o.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}
