package repository_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/pokedex/api/internal/database"
	"github.com/forgo/pokedex/api/internal/model"
	"github.com/forgo/pokedex/api/internal/repository"
	"github.com/forgo/pokedex/api/internal/testing/fixtures"
	"github.com/forgo/pokedex/api/internal/testing/testdb"
)

func TestPokemonRepositoryE2E_CreateAndLookup(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewPokemonRepository(tdb.DB)
	grass := "grass"
	p := &model.Pokemon{No: 1, Name: "BULBASAUR", Type: &grass}

	require.NoError(t, repo.Create(tdb.Ctx(), p))
	require.True(t, repo.IsValidID(p.ID))
	assert.False(t, p.CreatedOn.IsZero())

	byID, err := repo.GetByID(tdb.Ctx(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "BULBASAUR", byID.Name)
	require.NotNil(t, byID.Type)
	assert.Equal(t, "grass", *byID.Type)

	byNo, err := repo.GetByNo(tdb.Ctx(), 1)
	require.NoError(t, err)
	require.NotNil(t, byNo)
	assert.Equal(t, p.ID, byNo.ID)

	byName, err := repo.GetByName(tdb.Ctx(), "BULBASAUR")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, p.ID, byName.ID)

	missing, err := repo.GetByID(tdb.Ctx(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPokemonRepositoryE2E_UniqueIndexes(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	f.CreatePokemon(t, &fixtures.PokemonOpts{No: 25, Name: "PIKACHU"})

	repo := repository.NewPokemonRepository(tdb.DB)

	err := repo.Create(tdb.Ctx(), &model.Pokemon{No: 25, Name: "RAICHU"})
	var dup *database.DuplicateKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "no", dup.Field)
	assert.Equal(t, 25, dup.Value)

	err = repo.Create(tdb.Ctx(), &model.Pokemon{No: 26, Name: "PIKACHU"})
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "name", dup.Field)
	assert.ErrorIs(t, err, database.ErrDuplicate)
}

func TestPokemonRepositoryE2E_ListOrderAndPaging(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	fixtures.New(tdb.DB).CreatePokedex(t, 10)
	repo := repository.NewPokemonRepository(tdb.DB)

	page, err := repo.List(tdb.Ctx(), 3, 2)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, []int{3, 4, 5}, []int{page[0].No, page[1].No, page[2].No})

	tail, err := repo.List(tdb.Ctx(), 7, 8)
	require.NoError(t, err)
	assert.Len(t, tail, 2)

	past, err := repo.List(tdb.Ctx(), 7, 50)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestPokemonRepositoryE2E_UpdateAndDelete(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	pikachu := f.CreatePokemon(t, &fixtures.PokemonOpts{No: 25, Name: "PIKACHU"})
	f.CreatePokemon(t, &fixtures.PokemonOpts{No: 26, Name: "RAICHU"})

	repo := repository.NewPokemonRepository(tdb.DB)

	require.NoError(t, repo.Update(tdb.Ctx(), pikachu.ID, map[string]interface{}{"name": "PIKA"}))
	got, err := repo.GetByID(tdb.Ctx(), pikachu.ID)
	require.NoError(t, err)
	assert.Equal(t, "PIKA", got.Name)
	assert.Equal(t, 25, got.No)

	err = repo.Update(tdb.Ctx(), pikachu.ID, map[string]interface{}{"no": 26})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	n, err := repo.Delete(tdb.Ctx(), pikachu.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.Delete(tdb.Ctx(), pikachu.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPokemonRepositoryE2E_ReplaceAll(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	fixtures.New(tdb.DB).CreatePokedex(t, 3)
	repo := repository.NewPokemonRepository(tdb.DB)

	n, err := repo.ReplaceAll(tdb.Ctx(), []*model.Pokemon{
		{No: 150, Name: "MEWTWO"},
		{No: 151, Name: "MEW"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := repo.List(tdb.Ctx(), 100, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "MEWTWO", all[0].Name)

	// a failing batch leaves the previous contents in place
	_, err = repo.ReplaceAll(tdb.Ctx(), []*model.Pokemon{
		{No: 1, Name: "BULBASAUR"},
		{No: 1, Name: "IVYSAUR"},
	})
	require.Error(t, err)

	all, err = repo.List(tdb.Ctx(), 100, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
