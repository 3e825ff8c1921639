package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all database repositories.
type Repositories struct {
	ApplicationRepository *ApplicationRepository
}

// NewRepositories creates the repository set for the given pool and schema.
func NewRepositories(pool *pgxpool.Pool, schema string) *Repositories {
	return &Repositories{
		ApplicationRepository: NewApplicationRepository(pool, schema),
	}
}
