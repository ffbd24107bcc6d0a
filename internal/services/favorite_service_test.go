package services_test

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavoriteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewFavoriteService(db)
	user := seedUser(t, db, "+79998882233")
	recipe := seedRecipe(t, db, user.ID, "Borscht", time.Now())

	require.NoError(t, svc.Add(user.ID, recipe.ID))
	require.NoError(t, svc.Add(user.ID, recipe.ID))

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddFavoriteUnknownRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewFavoriteService(db)
	user := seedUser(t, db, "+79998882233")

	err := svc.Add(user.ID, uuid.New())
	assert.ErrorIs(t, err, services.ErrRecipeNotFound)
}

func TestRemoveFavoriteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewFavoriteService(db)
	user := seedUser(t, db, "+79998882233")
	recipe := seedRecipe(t, db, user.ID, "Borscht", time.Now())

	// Removing a never-favorited recipe is a no-op, not an error.
	require.NoError(t, svc.Remove(user.ID, recipe.ID))

	require.NoError(t, svc.Add(user.ID, recipe.ID))
	require.NoError(t, svc.Remove(user.ID, recipe.ID))
	require.NoError(t, svc.Remove(user.ID, recipe.ID))

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListFavoritesNewestFavoritedFirst(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewFavoriteService(db)
	user := seedUser(t, db, "+79998882233")

	now := time.Now()
	first := seedRecipe(t, db, user.ID, "favorited first", now)
	second := seedRecipe(t, db, user.ID, "favorited second", now)
	require.NoError(t, db.Create(&models.RecipeIngredient{ID: uuid.New(), RecipeID: first.ID, Name: "beet"}).Error)
	require.NoError(t, db.Create(&models.RecipeStep{ID: uuid.New(), RecipeID: first.ID, Position: 1, Instruction: "boil"}).Error)

	require.NoError(t, db.Create(&models.Favorite{ID: uuid.New(), UserID: user.ID, RecipeID: first.ID, CreatedAt: now}).Error)
	require.NoError(t, db.Create(&models.Favorite{ID: uuid.New(), UserID: user.ID, RecipeID: second.ID, CreatedAt: now.Add(time.Minute)}).Error)

	favorites, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	assert.Equal(t, "favorited second", favorites[0].Title)
	assert.Equal(t, "favorited first", favorites[1].Title)

	// Same hydrated shape as the recipe listing, favorite by construction.
	assert.Equal(t, []string{"beet"}, favorites[1].Ingredients)
	require.Len(t, favorites[1].Steps, 1)
	assert.Equal(t, 1, favorites[1].Steps[0].Position)
	for _, f := range favorites {
		assert.True(t, f.IsFavorite)
	}
}

func TestListFavoritesEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewFavoriteService(db)
	user := seedUser(t, db, "+79998882233")

	favorites, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
