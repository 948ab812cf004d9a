// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Insert appends one entry to the trail.

Parameters:
  - context: Request or background context.
  - entry: Entry with ID and CreatedAt already assigned by the service.
*/
func (repository *PostgresRepository) Insert(context context.Context, entry *Entry) error {
	query := `
		INSERT INTO audit_entries
			(id, actor_id, actor_email, action, entity_type, entity_id, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := repository.db.Exec(context, query,
		entry.ID, entry.ActorID, entry.ActorEmail, entry.Action,
		entry.EntityType, entry.EntityID, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert_audit_entry: %w", err)
	}
	return nil
}

/*
List returns entries newest first.

Returns:
  - []*Entry: One page of the trail.
  - int: Total number of entries, for pagination metadata.
  - error: Query or scan failures.
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := repository.db.QueryRow(context, `SELECT count(*) FROM audit_entries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count_audit_entries: %w", err)
	}

	query := `
		SELECT id, actor_id, actor_email, action, entity_type, entity_id, ip_address, created_at
		FROM audit_entries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list_audit_entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID, &entry.ActorID, &entry.ActorEmail, &entry.Action,
			&entry.EntityType, &entry.EntityID, &entry.IPAddress, &entry.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan_audit_entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, total, rows.Err()
}
