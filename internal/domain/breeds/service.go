package breeds

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Breed, error) {
	if err := s.validate.Struct(in); err != nil {
		return Breed{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, in)
}

// Update sobreescribe los seis campos editables. No es un PATCH: el payload
// completo es obligatorio, igual que en create.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Breed, error) {
	if err := s.validate.Struct(in); err != nil {
		return Breed{}, ErrInvalidInput
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
