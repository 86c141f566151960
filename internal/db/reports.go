package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/site-intel/internal/types"
)

// StoredReport is a persisted analysis report with storage metadata.
type StoredReport struct {
	ID        uuid.UUID            `json:"id"`
	SiteURL   string               `json:"site_url"`
	Report    types.AnalysisReport `json:"report"`
	CreatedAt time.Time            `json:"created_at"`
}

// SaveReport persists an analysis report as JSONB and returns its ID.
func (db *DB) SaveReport(ctx context.Context, report *types.AnalysisReport) (uuid.UUID, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analysis_reports (site_url, report)
		 VALUES ($1, $2)
		 RETURNING id`,
		report.URL, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport retrieves a stored report by ID, or nil when absent.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*StoredReport, error) {
	var (
		stored  StoredReport
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, site_url, report, created_at FROM analysis_reports WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.SiteURL, &payload, &stored.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if err := json.Unmarshal(payload, &stored.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
	}
	return &stored, nil
}

// ListReports returns recent reports for a site, newest first.
func (db *DB) ListReports(ctx context.Context, siteURL string, limit int) ([]StoredReport, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, site_url, report, created_at
		 FROM analysis_reports
		 WHERE site_url = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		siteURL, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		var (
			stored  StoredReport
			payload []byte
		)
		if err := rows.Scan(&stored.ID, &stored.SiteURL, &payload, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		if err := json.Unmarshal(payload, &stored.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
		}
		reports = append(reports, stored)
	}
	return reports, rows.Err()
}
