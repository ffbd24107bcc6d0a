package services_test

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeStep{},
		&models.RecipeAllergen{},
		&models.Favorite{},
		&models.UserPreference{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 720 * time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, phone string) *models.User {
	t.Helper()
	user := &models.User{ID: uuid.New(), Phone: phone, Username: "tester", PasswordHash: "unused"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, createdAt time.Time, allergens ...string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{ID: uuid.New(), UserID: userID, Title: title, CreatedAt: createdAt}
	require.NoError(t, db.Create(recipe).Error)
	for _, a := range allergens {
		require.NoError(t, db.Create(&models.RecipeAllergen{ID: uuid.New(), RecipeID: recipe.ID, Allergen: a}).Error)
	}
	return recipe
}
