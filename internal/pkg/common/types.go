package common

import (
	"fmt"
	"strings"
)

// IngredientMeasure 食譜內的食材與份量
type IngredientMeasure struct {
	Name    string `json:"name"`
	Measure string `json:"measure"` // 自由文字份量，例如 "2 cups"
}

// CandidateSummary 依食材搜尋回傳的候選食譜摘要
type CandidateSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// RecipeCandidate 從資料來源取得的完整候選食譜
type RecipeCandidate struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Thumbnail    string              `json:"thumbnail"`
	Category     string              `json:"category"`
	Area         string              `json:"area"`
	Instructions string              `json:"instructions"`
	Ingredients  []IngredientMeasure `json:"ingredients"`
	VideoURL     string              `json:"video_url,omitempty"`
	SourceURL    string              `json:"source_url,omitempty"`
	Tags         []string            `json:"tags,omitempty"`
}

// RecipeSuggestion 附帶比對結果的食譜建議，為引擎的輸出型別
type RecipeSuggestion struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Thumbnail    string              `json:"thumbnail"`
	Category     string              `json:"category"`
	Area         string              `json:"area"`
	Instructions string              `json:"instructions"`
	Steps        []string            `json:"steps"`
	Ingredients  []IngredientMeasure `json:"ingredients"`
	VideoURL     string              `json:"video_url,omitempty"`
	SourceURL    string              `json:"source_url,omitempty"`
	Tags         []string            `json:"tags,omitempty"`

	MatchPercentage    int      `json:"match_percentage"`
	MissingIngredients []string `json:"missing_ingredients"`

	// 以下為隨機產生的示意數值，並非真實營養或時間資料
	EstimatedCookTimeMinutes int `json:"estimated_cook_time_minutes"`
	EstimatedPrepTimeMinutes int `json:"estimated_prep_time_minutes"`
	EstimatedServings        int `json:"estimated_servings"`
	EstimatedCalories        int `json:"estimated_calories"`
}

// FormatMissingIngredient 格式化缺少的食材："name" 或 "name (measure)"
func FormatMissingIngredient(ing IngredientMeasure) string {
	measure := strings.TrimSpace(ing.Measure)
	if measure == "" {
		return ing.Name
	}
	return fmt.Sprintf("%s (%s)", ing.Name, measure)
}
