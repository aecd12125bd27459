package suggestion

import (
	"strings"

	"recipe-suggester/internal/pkg/common"
)

// SplitSteps 將烹飪說明切成逐步顯示用的步驟
// 以行為單位，去除前後空白並略過空行
func SplitSteps(instructions string) []string {
	lines := strings.Split(strings.ReplaceAll(instructions, "\r\n", "\n"), "\n")
	steps := make([]string, 0, len(lines))
	for _, line := range lines {
		if step := strings.TrimSpace(line); step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

// assemble 將候選食譜與比對結果組裝為完整的食譜建議
func (s *Service) assemble(candidate *common.RecipeCandidate, matchPercentage int, missingIngredients []string) common.RecipeSuggestion {
	estimates := s.estimator.Estimate()

	return common.RecipeSuggestion{
		ID:           candidate.ID,
		Title:        candidate.Title,
		Thumbnail:    candidate.Thumbnail,
		Category:     candidate.Category,
		Area:         candidate.Area,
		Instructions: candidate.Instructions,
		Steps:        SplitSteps(candidate.Instructions),
		Ingredients:  candidate.Ingredients,
		VideoURL:     candidate.VideoURL,
		SourceURL:    candidate.SourceURL,
		Tags:         candidate.Tags,

		MatchPercentage:    matchPercentage,
		MissingIngredients: missingIngredients,

		EstimatedCookTimeMinutes: estimates.CookTimeMinutes,
		EstimatedPrepTimeMinutes: estimates.PrepTimeMinutes,
		EstimatedServings:        estimates.Servings,
		EstimatedCalories:        estimates.Calories,
	}
}
