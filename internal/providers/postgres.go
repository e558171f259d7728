package providers

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Queryer is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type Queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository resolves recipients from the relational store.
type PostgresRepository struct {
	db Queryer
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(db Queryer) *PostgresRepository {
	if db == nil {
		panic("providers: db required")
	}
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) emailByID(ctx context.Context, table, id string) (string, error) {
	query := fmt.Sprintf(`SELECT email FROM %s WHERE id = $1`, table)
	var email string
	if err := r.db.QueryRow(ctx, query, id).Scan(&email); err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("providers: select from %s failed: %w", table, err)
	}
	return email, nil
}

// DoctorEmail returns the email for a doctor row by id.
func (r *PostgresRepository) DoctorEmail(ctx context.Context, id string) (string, error) {
	return r.emailByID(ctx, "doctors", id)
}

// NurseEmail returns the email for a nurse row by id.
func (r *PostgresRepository) NurseEmail(ctx context.Context, id string) (string, error) {
	return r.emailByID(ctx, "nurses", id)
}

// StoreEmail returns the email for a medical store row by id.
func (r *PostgresRepository) StoreEmail(ctx context.Context, id string) (string, error) {
	return r.emailByID(ctx, "medical_stores", id)
}

// EmergencyNurseEmails returns every nurse flagged approved and
// emergency-available, for the broadcast path.
func (r *PostgresRepository) EmergencyNurseEmails(ctx context.Context) ([]string, error) {
	query := `
		SELECT email FROM nurses
		WHERE status = 'approved' AND emergency_available = true
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("providers: select emergency nurses failed: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("providers: scan nurse email failed: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("providers: read emergency nurses failed: %w", err)
	}
	return emails, nil
}

// UserEmail resolves a profile's email by user id.
func (r *PostgresRepository) UserEmail(ctx context.Context, userID string) (string, error) {
	return r.emailByID(ctx, "profiles", userID)
}

var _ Repository = (*PostgresRepository)(nil)
