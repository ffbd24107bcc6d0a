package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// Get returns the user's preference lists, or empty lists when no row exists
// yet. A missing row is never an error.
func (s *PreferenceService) Get(userID uuid.UUID) (*dto.PreferencesResponse, error) {
	var pref models.UserPreference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.PreferencesResponse{
			Allergies:          []string{},
			DietaryPreferences: []string{},
			ForbiddenProducts:  []string{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return &dto.PreferencesResponse{
		Allergies:          emptyIfNil(pref.Allergies),
		DietaryPreferences: emptyIfNil(pref.DietaryPreferences),
		ForbiddenProducts:  emptyIfNil(pref.ForbiddenProducts),
	}, nil
}

// Upsert replaces all three lists wholesale, creating the row on first write.
func (s *PreferenceService) Upsert(userID uuid.UUID, req *dto.PreferencesRequest) (*dto.PreferencesResponse, error) {
	pref := models.UserPreference{
		ID:                 uuid.New(),
		UserID:             userID,
		Allergies:          datatypes.NewJSONSlice(req.Allergies),
		DietaryPreferences: datatypes.NewJSONSlice(req.DietaryPreferences),
		ForbiddenProducts:  datatypes.NewJSONSlice(req.ForbiddenProducts),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"allergies", "dietary_preferences", "forbidden_products", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	return s.Get(userID)
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
