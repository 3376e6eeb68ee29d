package model

import (
	"fmt"
	"time"
)

// Mood enumerates the mood tags a generation request may carry.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodEnergetic Mood = "energetic"
	MoodTired     Mood = "tired"
	MoodStressed  Mood = "stressed"
	MoodCalm      Mood = "calm"
	MoodExcited   Mood = "excited"
	MoodBored     Mood = "bored"
)

// Moods lists every valid mood tag.
var Moods = []Mood{
	MoodHappy, MoodSad, MoodEnergetic, MoodTired,
	MoodStressed, MoodCalm, MoodExcited, MoodBored,
}

// Valid reports whether m is a known mood tag.
func (m Mood) Valid() bool {
	for _, v := range Moods {
		if m == v {
			return true
		}
	}
	return false
}

// Cuisine enumerates the cuisine preference tags.
type Cuisine string

const (
	CuisineAny           Cuisine = "any"
	CuisineItalian       Cuisine = "italian"
	CuisineChinese       Cuisine = "chinese"
	CuisineIndian        Cuisine = "indian"
	CuisineMexican       Cuisine = "mexican"
	CuisineAmerican      Cuisine = "american"
	CuisineJapanese      Cuisine = "japanese"
	CuisineFrench        Cuisine = "french"
	CuisineThai          Cuisine = "thai"
	CuisineMediterranean Cuisine = "mediterranean"
)

// Cuisines lists every valid cuisine tag.
var Cuisines = []Cuisine{
	CuisineAny, CuisineItalian, CuisineChinese, CuisineIndian, CuisineMexican,
	CuisineAmerican, CuisineJapanese, CuisineFrench, CuisineThai, CuisineMediterranean,
}

// Valid reports whether c is a known cuisine tag.
func (c Cuisine) Valid() bool {
	for _, v := range Cuisines {
		if c == v {
			return true
		}
	}
	return false
}

// GenerationRequest is the frozen snapshot submitted to the generation
// endpoint. It is constructed immediately before submission and never
// mutated afterwards.
type GenerationRequest struct {
	Ingredients       []string `json:"ingredients"`
	Mood              Mood     `json:"mood"`
	CuisinePreference Cuisine  `json:"cuisine_preference"`
	Servings          int      `json:"servings"`
}

// Validate checks the request against the service's constraints.
func (r GenerationRequest) Validate() error {
	if len(r.Ingredients) == 0 {
		return ErrEmptyIngredients
	}
	if !r.Mood.Valid() {
		return fmt.Errorf("unknown mood %q", r.Mood)
	}
	if !r.CuisinePreference.Valid() {
		return fmt.Errorf("unknown cuisine %q", r.CuisinePreference)
	}
	if r.Servings < 1 || r.Servings > 10 {
		return fmt.Errorf("servings %d out of range [1,10]", r.Servings)
	}
	return nil
}

// NutritionFacts carries the per-serving nutrition estimate of a recipe.
type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// Recipe represents a generated recipe as returned by the service.
type Recipe struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Ingredients  []string       `json:"ingredients"`
	Instructions []string       `json:"instructions"`
	PrepTime     int            `json:"prep_time"`
	CookTime     int            `json:"cook_time"`
	TotalTime    int            `json:"total_time"`
	Servings     int            `json:"servings"`
	Difficulty   string         `json:"difficulty"`
	CuisineType  string         `json:"cuisine_type"`
	Nutrition    NutritionFacts `json:"nutrition_info"`
	Tags         []string       `json:"tags"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// RecipeResult pairs a server-returned recipe with the locally tracked
// favorite flag. The flag is authoritative only until the next fetch.
type RecipeResult struct {
	Recipe     Recipe
	IsFavorite bool
}

// Dashboard aggregates the per-user cooking statistics.
type Dashboard struct {
	TotalRecipesGenerated int              `json:"total_recipes_generated"`
	TotalFavorites        int              `json:"total_favorites"`
	UniqueIngredientsUsed int              `json:"unique_ingredients_used"`
	AvgCookingTimeMinutes float64          `json:"avg_cooking_time_minutes"`
	MostUsedCuisine       string           `json:"most_used_cuisine"`
	TopIngredients        []IngredientStat `json:"top_ingredients"`
	MoodDistribution      map[string]int   `json:"mood_distribution"`
}

// IngredientStat is one entry of the dashboard's top-ingredients list.
type IngredientStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
