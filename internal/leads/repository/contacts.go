package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nurture_backend/internal/leads/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, agent_id, name, phone, email, source, status, nurture_status, property_type,
	budget_min, budget_max, preferred_areas, timeline, notes, lead_score,
	last_contacted_at, next_follow_up_at, created_at, updated_at`

func scanContact(row pgx.Row) (Contact, error) {
	var c Contact
	err := row.Scan(
		&c.ID, &c.AgentID, &c.Name, &c.Phone, &c.Email, &c.Source, &c.Status, &c.NurtureStatus, &c.PropertyType,
		&c.BudgetMin, &c.BudgetMax, &c.PreferredAreas, &c.Timeline, &c.Notes, &c.LeadScore,
		&c.LastContactedAt, &c.NextFollowUpAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if c.PreferredAreas == nil {
		c.PreferredAreas = []string{}
	}
	return c, err
}

func (r *Repository) GetContact(ctx context.Context, id uuid.UUID) (Contact, error) {
	contact, err := scanContact(r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Contact{}, ErrNotFound
	}
	return contact, err
}

func (r *Repository) CreateContact(ctx context.Context, params CreateContactParams) (Contact, error) {
	areas := params.PreferredAreas
	if areas == nil {
		areas = []string{}
	}

	return scanContact(r.pool.QueryRow(ctx, `
		INSERT INTO contacts (
			id, agent_id, name, phone, email, source, status, nurture_status, property_type,
			budget_min, budget_max, preferred_areas, timeline, notes, lead_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+contactColumns,
		uuid.New(), params.AgentID, params.Name, params.Phone, params.Email, params.Source, params.Status,
		params.NurtureStatus, params.PropertyType, params.BudgetMin, params.BudgetMax, areas,
		params.Timeline, params.Notes, params.LeadScore,
	))
}

func (r *Repository) UpdateContact(ctx context.Context, id uuid.UUID, params UpdateContactParams) (Contact, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	fields := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.Name != nil, "name", params.Name},
		{params.Phone != nil, "phone", params.Phone},
		{params.EmailSet, "email", params.Email},
		{params.Source != nil, "source", params.Source},
		{params.Status != nil, "status", params.Status},
		{params.NurtureStatus != nil, "nurture_status", params.NurtureStatus},
		{params.PropertyType != nil, "property_type", params.PropertyType},
		{params.BudgetMin != nil, "budget_min", params.BudgetMin},
		{params.BudgetMax != nil, "budget_max", params.BudgetMax},
		{params.AreasSet, "preferred_areas", nonNilAreas(params.PreferredAreas)},
		{params.Timeline != nil, "timeline", params.Timeline},
		{params.Notes != nil, "notes", params.Notes},
		{true, "lead_score", params.LeadScore},
	}

	for _, field := range fields {
		if !field.enabled {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field.column, argIdx))
		args = append(args, field.value)
		argIdx++
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE contacts SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argIdx, contactColumns)

	contact, err := scanContact(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Contact{}, ErrNotFound
	}
	return contact, err
}

func (r *Repository) ListStaleLeads(ctx context.Context, query StaleLeadQuery) ([]Contact, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE (last_contacted_at IS NULL OR last_contacted_at < $1)
			AND NOT (status = ANY($3::text[]))
			AND NOT (nurture_status = ANY($4::text[]))
			AND ($2::uuid IS NULL OR agent_id = $2)
		ORDER BY last_contacted_at ASC NULLS FIRST, created_at ASC
	`, query.Cutoff, query.AgentID, domain.TerminalStatuses(), domain.TerminalNurtureStatuses())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return contacts, nil
}

func nonNilAreas(areas []string) []string {
	if areas == nil {
		return []string{}
	}
	return areas
}
