package repository

import (
	"context"
	"errors"
	"time"

	"nurture_backend/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const interactionColumns = `id, contact_id, agent_id, type, content, scheduled_for, created_at`

func scanInteraction(row pgx.Row) (Interaction, error) {
	var i Interaction
	err := row.Scan(&i.ID, &i.ContactID, &i.AgentID, &i.Type, &i.Content, &i.ScheduledFor, &i.CreatedAt)
	return i, err
}

// LogInteraction appends an interaction and sets last_contacted_at to the
// interaction's creation time. Both writes commit together.
func (r *Repository) LogInteraction(ctx context.Context, params LogInteractionParams) (Interaction, error) {
	var interaction Interaction
	err := db.RunInTx(ctx, r.pool, func(tx pgx.Tx) error {
		var contactedAt time.Time
		err := tx.QueryRow(ctx, `
			UPDATE contacts SET last_contacted_at = now(), updated_at = now()
			WHERE id = $1
			RETURNING last_contacted_at
		`, params.ContactID).Scan(&contactedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		interaction, err = scanInteraction(tx.QueryRow(ctx, `
			INSERT INTO contact_interactions (id, contact_id, agent_id, type, content, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+interactionColumns,
			uuid.New(), params.ContactID, params.AgentID, params.Type, params.Content, contactedAt,
		))
		return err
	})
	return interaction, err
}

// ScheduleFollowUp sets next_follow_up_at and appends the scheduled
// interaction. Both writes commit together.
func (r *Repository) ScheduleFollowUp(ctx context.Context, params ScheduleFollowUpParams) (Interaction, error) {
	var interaction Interaction
	err := db.RunInTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE contacts SET next_follow_up_at = $2, updated_at = now()
			WHERE id = $1
		`, params.ContactID, params.ScheduledFor)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		interaction, err = scanInteraction(tx.QueryRow(ctx, `
			INSERT INTO contact_interactions (id, contact_id, agent_id, type, content, scheduled_for)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+interactionColumns,
			uuid.New(), params.ContactID, params.AgentID, params.Type, params.Notes, params.ScheduledFor,
		))
		return err
	})
	return interaction, err
}

func (r *Repository) ListRecentInteractions(ctx context.Context, contactID uuid.UUID, limit int) ([]Interaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+interactionColumns+`
		FROM contact_interactions
		WHERE contact_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, contactID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := make([]Interaction, 0)
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return interactions, nil
}
