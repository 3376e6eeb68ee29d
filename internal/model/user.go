package model

import (
	"slices"
	"time"
)

// UserProfile represents the account record returned by the service.
// Profile updates replace the whole record, never individual fields.
type UserProfile struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	Allergies          []string  `json:"allergies"`
	HealthGoals        []string  `json:"health_goals"`
	CreatedAt          time.Time `json:"created_at"`
}

// RegisterParams contains parameters to create an account.
type RegisterParams struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	HealthGoals        []string `json:"health_goals"`
}

// UpdateProfileParams contains the replacement profile fields for PUT /users/me.
type UpdateProfileParams struct {
	Name               string   `json:"name"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	HealthGoals        []string `json:"health_goals"`
}

// DietaryPreferences enumerates the dietary tags the service accepts.
var DietaryPreferences = []string{
	"vegetarian", "vegan", "gluten_free", "keto", "paleo",
	"low_carb", "high_protein", "dairy_free", "nut_free",
}

// HealthGoals enumerates the health goal tags the service accepts.
var HealthGoals = []string{
	"weight_loss", "muscle_gain", "maintain_weight", "heart_health",
	"diabetes_management", "balanced_diet", "energy_boost",
}

// ValidDietaryPreference reports whether tag is a known dietary preference.
func ValidDietaryPreference(tag string) bool {
	return slices.Contains(DietaryPreferences, tag)
}

// ValidHealthGoal reports whether tag is a known health goal.
func ValidHealthGoal(tag string) bool {
	return slices.Contains(HealthGoals, tag)
}
