package repository

import (
	"context"
	"database/sql"
	"fmt"

	"scheme-directory/internal/domain/entity"
	domainRepo "scheme-directory/internal/domain/repository"
	"scheme-directory/internal/schemequery"
)

// schemeRepository runs positional ($n) statements directly on the pool
// behind gorm, so statement text reaches the driver unchanged.
type schemeRepository struct {
	db *sql.DB
}

func NewSchemeRepository(db *sql.DB) domainRepo.SchemeRepository {
	return &schemeRepository{db: db}
}

func (r *schemeRepository) Count(ctx context.Context, query string, args []interface{}) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count schemes: %w", err)
	}
	return total, nil
}

func (r *schemeRepository) Find(ctx context.Context, query string, args []interface{}) ([]entity.Scheme, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schemes: %w", err)
	}
	defer rows.Close()

	schemes := make([]entity.Scheme, 0)
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scheme: %w", err)
		}
		schemes = append(schemes, scheme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schemes: %w", err)
	}
	return schemes, nil
}

func (r *schemeRepository) FindAll(ctx context.Context) ([]entity.Scheme, error) {
	return r.Find(ctx, schemequery.ListAllSQL, nil)
}

// scanScheme reads one row selected with schemequery.SchemeColumns.
func scanScheme(rows *sql.Rows) (entity.Scheme, error) {
	var s entity.Scheme
	err := rows.Scan(
		&s.SchemeID,
		&s.SchemeName,
		&s.Description,
		&s.Benefits,
		&s.Age,
		&s.Gender,
		&s.Caste,
		&s.Occupation,
		&s.Residence,
		&s.ApplicationMode,
		&s.SchemeCategory,
		&s.DifferentlyAbled,
		&s.BenefitType,
		&s.GovernmentEmployee,
		&s.MaritalStatus,
		&s.Level,
		&s.Minority,
		&s.EmploymentStatus,
	)
	return s, err
}
