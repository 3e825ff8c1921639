package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ltlab/internship-portal/internal/app/models"
	"github.com/ltlab/internship-portal/internal/db"
	"github.com/ltlab/internship-portal/internal/pkg/dberrors"
	"github.com/ltlab/internship-portal/internal/pkg/logger"
)

// ApplicationRepository handles application database operations against the
// schema-qualified applications table.
type ApplicationRepository struct {
	db    *pgxpool.Pool
	table string
	sb    squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository writing to the
// applications table under the given schema.
func NewApplicationRepository(pool *pgxpool.Pool, schema string) *ApplicationRepository {
	return &ApplicationRepository{
		db:    pool,
		table: pgx.Identifier{schema, "applications"}.Sanitize(),
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateApplication inserts one application inside a transaction and returns
// its assigned id. Any failure rolls the transaction back, so either exactly
// one row is created or none is.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application) (int64, error) {
	sql, args, err := r.sb.Insert(r.table).
		Columns("email", "full_name", "gender", "whatsapp", "education", "country", "linkedin", "domains").
		Values(app.Email, app.FullName, app.Gender, app.Whatsapp, app.Education, app.Country, app.Linkedin, app.Domains).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, args...).Scan(&id)
	})
	if err != nil {
		if dberrors.IsConstraintViolation(err) {
			logger.Warn().Err(err).Msg("Application insert violated a constraint")
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// ListApplications retrieves all stored applications, newest first.
func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]*models.Application, error) {
	sql, args, err := r.sb.Select("id", "email", "full_name", "gender", "whatsapp", "education", "country", "linkedin", "domains").
		From(r.table).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	applications := []*models.Application{}
	for rows.Next() {
		app := &models.Application{}
		if err := rows.Scan(&app.ID, &app.Email, &app.FullName, &app.Gender, &app.Whatsapp, &app.Education, &app.Country, &app.Linkedin, &app.Domains); err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, app)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application rows")
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}
