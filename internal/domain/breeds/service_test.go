package breeds_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breed-catalog/internal/adapters/storage/memory"
	"breed-catalog/internal/domain/breeds"
)

func validInput() breeds.Input {
	return breeds.Input{
		Name:        "Shiba Inu",
		Origin:      "Japan",
		Size:        "Medium",
		Temperament: "Alert, Active",
		Lifespan:    "12-15 years",
		Description: "A small, agile dog.",
	}
}

func TestService_CreateRequiresAllFields(t *testing.T) {
	ctx := context.Background()
	svc := breeds.NewService(memory.NewBreedRepo())

	cases := map[string]func(*breeds.Input){
		"name":        func(in *breeds.Input) { in.Name = "" },
		"origin":      func(in *breeds.Input) { in.Origin = "" },
		"size":        func(in *breeds.Input) { in.Size = "" },
		"temperament": func(in *breeds.Input) { in.Temperament = "" },
		"lifespan":    func(in *breeds.Input) { in.Lifespan = "" },
		"description": func(in *breeds.Input) { in.Description = "" },
	}

	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			in := validInput()
			clear(&in)

			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, breeds.ErrInvalidInput)

			// update aplica el mismo chequeo de presencia
			_, err = svc.Update(ctx, 1, in)
			assert.ErrorIs(t, err, breeds.ErrInvalidInput)
		})
	}
}

func TestService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := breeds.NewService(memory.NewBreedRepo())

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Shiba Inu", created.Name)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_ValidationDoesNotTrimOrCoerce(t *testing.T) {
	ctx := context.Background()
	svc := breeds.NewService(memory.NewBreedRepo())

	// presencia solamente: whitespace pasa tal cual, sin trim
	in := validInput()
	in.Origin = "   "

	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "   ", created.Origin)
}

func TestService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	svc := breeds.NewService(memory.NewBreedRepo())

	err := svc.Delete(ctx, 99999)
	assert.ErrorIs(t, err, breeds.ErrNotFound)
}
