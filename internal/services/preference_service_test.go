package services_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPreferencesWithoutRow(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPreferenceService(db)
	user := seedUser(t, db, "+79998882233")

	prefs, err := svc.Get(user.ID)
	require.NoError(t, err)

	// Empty lists, never nil and never an error.
	assert.NotNil(t, prefs.Allergies)
	assert.NotNil(t, prefs.DietaryPreferences)
	assert.NotNil(t, prefs.ForbiddenProducts)
	assert.Empty(t, prefs.Allergies)
	assert.Empty(t, prefs.DietaryPreferences)
	assert.Empty(t, prefs.ForbiddenProducts)
}

func TestUpsertPreferencesCreatesThenReplaces(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPreferenceService(db)
	user := seedUser(t, db, "+79998882233")

	prefs, err := svc.Upsert(user.ID, &dto.PreferencesRequest{
		Allergies:          []string{"nuts", "dairy"},
		DietaryPreferences: []string{"vegetarian"},
		ForbiddenProducts:  []string{"pork"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"nuts", "dairy"}, prefs.Allergies)

	// The second write replaces all three lists wholesale.
	prefs, err = svc.Upsert(user.ID, &dto.PreferencesRequest{
		Allergies:          []string{"gluten"},
		DietaryPreferences: []string{},
		ForbiddenProducts:  []string{"pork", "shellfish"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"gluten"}, prefs.Allergies)
	assert.Empty(t, prefs.DietaryPreferences)
	assert.Equal(t, []string{"pork", "shellfish"}, prefs.ForbiddenProducts)

	// Upsert never duplicates the row.
	var count int64
	require.NoError(t, db.Model(&models.UserPreference{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
