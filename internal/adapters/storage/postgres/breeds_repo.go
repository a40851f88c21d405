package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"breed-catalog/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, origin, size, temperament, lifespan, description,
			created_at, updated_at
		FROM breeds
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Origin,
			&b.Size,
			&b.Temperament,
			&b.Lifespan,
			&b.Description,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, origin, size, temperament, lifespan, description,
			created_at, updated_at
		FROM breeds
		WHERE id = $1
	`, id)

	var b breeds.Breed
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Origin,
		&b.Size,
		&b.Temperament,
		&b.Lifespan,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return breeds.Breed{}, breeds.ErrNotFound
		}
		return breeds.Breed{}, err
	}

	return b, nil
}

// Create inserta una fila nueva. id y timestamps los genera la base; se
// devuelven vía RETURNING para que la respuesta no haga un segundo query.
func (r *BreedsRepo) Create(ctx context.Context, in breeds.Input) (breeds.Breed, error) {
	b := breeds.Breed{
		Name:        in.Name,
		Origin:      in.Origin,
		Size:        in.Size,
		Temperament: in.Temperament,
		Lifespan:    in.Lifespan,
		Description: in.Description,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO breeds (name, origin, size, temperament, lifespan, description)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at
	`,
		in.Name,
		in.Origin,
		in.Size,
		in.Temperament,
		in.Lifespan,
		in.Description,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return breeds.Breed{}, breeds.ErrDuplicateName
		}
		return breeds.Breed{}, err
	}

	return b, nil
}

func (r *BreedsRepo) Update(ctx context.Context, id int64, in breeds.Input) (breeds.Breed, error) {
	b := breeds.Breed{
		ID:          id,
		Name:        in.Name,
		Origin:      in.Origin,
		Size:        in.Size,
		Temperament: in.Temperament,
		Lifespan:    in.Lifespan,
		Description: in.Description,
	}

	err := r.db.QueryRowContext(ctx, `
		UPDATE breeds
		SET
			name = $2,
			origin = $3,
			size = $4,
			temperament = $5,
			lifespan = $6,
			description = $7,
			updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`,
		id,
		in.Name,
		in.Origin,
		in.Size,
		in.Temperament,
		in.Lifespan,
		in.Description,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return breeds.Breed{}, breeds.ErrNotFound
		}
		if isUniqueViolation(err) {
			return breeds.Breed{}, breeds.ErrDuplicateName
		}
		return breeds.Breed{}, err
	}

	return b, nil
}

func (r *BreedsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeds.ErrNotFound
	}
	return nil
}

// 23505 = unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
