package dto

type PreferencesRequest struct {
	Allergies          []string `json:"allergies"`
	DietaryPreferences []string `json:"dietary_preferences"`
	ForbiddenProducts  []string `json:"forbidden_products"`
}

type PreferencesResponse struct {
	Allergies          []string `json:"allergies"`
	DietaryPreferences []string `json:"dietary_preferences"`
	ForbiddenProducts  []string `json:"forbidden_products"`
}
