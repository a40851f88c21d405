package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"breed-catalog/internal/domain/breeds"
)

// breedRepo es un store en memoria con la misma semántica que el adapter de
// Postgres: ids autoincrementales, name único, updated_at refrescado en cada
// update. Se usa en tests y como fallback dev cuando no hay DB_DSN.
type breedRepo struct {
	mu     sync.RWMutex
	byID   map[int64]breeds.Breed
	nextID int64
	now    func() time.Time
}

func NewBreedRepo() breeds.Repository {
	return &breedRepo{
		byID:   make(map[int64]breeds.Breed),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *breedRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *breedRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	return b, nil
}

func (r *breedRepo) Create(ctx context.Context, in breeds.Input) (breeds.Breed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(in.Name, 0) {
		return breeds.Breed{}, breeds.ErrDuplicateName
	}

	now := r.now()
	b := breeds.Breed{
		ID:          r.nextID,
		Name:        in.Name,
		Origin:      in.Origin,
		Size:        in.Size,
		Temperament: in.Temperament,
		Lifespan:    in.Lifespan,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextID++
	r.byID[b.ID] = b

	return b, nil
}

func (r *breedRepo) Update(ctx context.Context, id int64, in breeds.Input) (breeds.Breed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	if r.nameTaken(in.Name, id) {
		return breeds.Breed{}, breeds.ErrDuplicateName
	}

	current.Name = in.Name
	current.Origin = in.Origin
	current.Size = in.Size
	current.Temperament = in.Temperament
	current.Lifespan = in.Lifespan
	current.Description = in.Description
	current.UpdatedAt = r.now()
	r.byID[id] = current

	return current, nil
}

func (r *breedRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return breeds.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// nameTaken chequea colisión de name contra cualquier fila distinta de self.
// Caller debe tener el lock.
func (r *breedRepo) nameTaken(name string, self int64) bool {
	for id, b := range r.byID {
		if id != self && b.Name == name {
			return true
		}
	}
	return false
}
