package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/TheViking816/DescansosCPE/pkg/db"
)

// UpsertUsageActivity records a worker's last activity, one row per
// badge number.
func (d *DB) UpsertUsageActivity(ctx context.Context, activity db.UsageActivity) error {
	updatedAt, err := time.Parse(time.RFC3339, activity.UpdatedAt)
	if err != nil {
		updatedAt = time.Now().UTC()
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO usage_activity (chapa, seccion, ultima_actualizacion)
		VALUES ($1, $2, $3)
		ON CONFLICT (chapa) DO UPDATE
		SET seccion = EXCLUDED.seccion, ultima_actualizacion = EXCLUDED.ultima_actualizacion
	`, activity.Badge, activity.Section, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert usage activity for %s: %w", activity.Badge, err)
	}
	return nil
}
