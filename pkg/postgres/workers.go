package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/TheViking816/DescansosCPE/pkg/db"
)

const workerColumns = `w.id, w.name, w.chapa, w.grupo_descanso, w.semana,
	COALESCE(w.especialidad_codigo, ''), COALESCE(s.name, ''),
	COALESCE(w.telefono, ''), COALESCE(w.avatar_url, '')`

// GetWorker fetches one worker profile with its specialty name
// resolved. Returns nil when the worker does not exist.
func (d *DB) GetWorker(ctx context.Context, workerID string) (*db.Worker, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+workerColumns+`
		FROM worker w
		LEFT JOIN specialty s ON s.code = w.especialidad_codigo
		WHERE w.id = $1
	`, workerID)

	var w db.Worker
	err := row.Scan(&w.ID, &w.Name, &w.Badge, &w.RestGroup, &w.RotationWeek,
		&w.SpecialtyCode, &w.SpecialtyName, &w.Phone, &w.AvatarURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker %s: %w", workerID, err)
	}

	return &w, nil
}

// ListWorkers retrieves every worker profile with specialty names
// resolved, ordered by name.
func (d *DB) ListWorkers(ctx context.Context) ([]db.Worker, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+workerColumns+`
		FROM worker w
		LEFT JOIN specialty s ON s.code = w.especialidad_codigo
		ORDER BY w.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []db.Worker
	for rows.Next() {
		var w db.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Badge, &w.RestGroup, &w.RotationWeek,
			&w.SpecialtyCode, &w.SpecialtyName, &w.Phone, &w.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}

	return workers, nil
}

// ListSpecialties retrieves the job-role catalog.
func (d *DB) ListSpecialties(ctx context.Context) ([]db.Specialty, error) {
	rows, err := d.pool.Query(ctx, `SELECT code, name FROM specialty ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query specialties: %w", err)
	}
	defer rows.Close()

	var specialties []db.Specialty
	for rows.Next() {
		var s db.Specialty
		if err := rows.Scan(&s.Code, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan specialty: %w", err)
		}
		specialties = append(specialties, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specialties: %w", err)
	}

	return specialties, nil
}
