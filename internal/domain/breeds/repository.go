package breeds

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indica que ningún registro coincide con el id pedido.
	ErrNotFound = errors.New("breed not found")
	// ErrDuplicateName indica colisión con el unique constraint de name.
	ErrDuplicateName = errors.New("breed name already exists")
)

// Repository es el único componente que toca el store. Cada operación es un
// statement atómico; los errores esperados se devuelven como sentinelas de
// este paquete, cualquier otro error es falla de store.
type Repository interface {
	List(ctx context.Context) ([]Breed, error)
	GetByID(ctx context.Context, id int64) (Breed, error)
	Create(ctx context.Context, in Input) (Breed, error)
	Update(ctx context.Context, id int64, in Input) (Breed, error)
	Delete(ctx context.Context, id int64) error
}
