package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breed-catalog/internal/adapters/storage/memory"
	"breed-catalog/internal/domain/breeds"
)

func input(name string) breeds.Input {
	return breeds.Input{
		Name:        name,
		Origin:      "Japan",
		Size:        "Medium",
		Temperament: "Alert",
		Lifespan:    "12-15 years",
		Description: "desc",
	}
}

func TestBreedRepo_CreateRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBreedRepo()

	first, err := repo.Create(ctx, input("Shiba Inu"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, input("Shiba Inu"))
	assert.ErrorIs(t, err, breeds.ErrDuplicateName)

	// la fila existente no cambió
	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestBreedRepo_UpdateSemantics(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBreedRepo()

	a, err := repo.Create(ctx, input("Akita"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, input("Beagle"))
	require.NoError(t, err)

	// renombrar sobre otro name existente colisiona
	_, err = repo.Update(ctx, b.ID, input("Akita"))
	assert.ErrorIs(t, err, breeds.ErrDuplicateName)

	// conservar el propio name no colisiona; updated_at sube, created_at no
	in := input("Akita")
	in.Size = "Large"
	updated, err := repo.Update(ctx, a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "Large", updated.Size)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(a.UpdatedAt), "updated_at should increase")

	// update de un id inexistente
	_, err = repo.Update(ctx, 99999, input("Ghost"))
	assert.ErrorIs(t, err, breeds.ErrNotFound)
}

func TestBreedRepo_ListSortsByName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBreedRepo()

	for _, name := range []string{"Pug", "Akita", "Beagle"} {
		_, err := repo.Create(ctx, input(name))
		require.NoError(t, err)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Akita", items[0].Name)
	assert.Equal(t, "Beagle", items[1].Name)
	assert.Equal(t, "Pug", items[2].Name)
}

func TestBreedRepo_DeleteFreesNameButNotID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBreedRepo()

	a, err := repo.Create(ctx, input("Akita"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), breeds.ErrNotFound)

	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, breeds.ErrNotFound)

	// el name queda libre, pero el id no se reusa
	again, err := repo.Create(ctx, input("Akita"))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, again.ID)
}

func TestBreedRepo_ListEmpty(t *testing.T) {
	items, err := memory.NewBreedRepo().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}
