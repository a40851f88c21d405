package postgres

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"breed-catalog/internal/domain/breeds"
)

const createBreedsTable = `
CREATE TABLE IF NOT EXISTS breeds (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	origin TEXT NOT NULL,
	size TEXT NOT NULL,
	temperament TEXT NOT NULL,
	lifespan TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// InitSchema asegura la tabla breeds y siembra el catálogo base si está
// vacía. Idempotente: correr contra una base ya inicializada no hace nada.
// El caller loguea el error y sigue; una falla acá no tumba el proceso.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createBreedsTable); err != nil {
		return err
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breeds`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int("count", count).Msg("breeds table already populated")
		return nil
	}

	repo := NewBreedsRepo(db)
	for _, in := range breeds.Seed() {
		if _, err := repo.Create(ctx, in); err != nil {
			return err
		}
	}

	log.Info().Msg("seeded baseline breed catalog")
	return nil
}
