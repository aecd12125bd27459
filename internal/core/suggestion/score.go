package suggestion

import (
	"recipe-suggester/internal/pkg/common"
)

// Score 計算候選食譜對選定食材的符合度
// 回傳符合百分比（整數截斷）與缺少食材清單；兩者互斥——
// 每個食材不是被比中就是進缺少清單，不會同時出現在兩邊
func Score(candidate *common.RecipeCandidate, selectedIngredients []string) (int, []string) {
	missing := make([]string, 0, len(candidate.Ingredients))

	if len(candidate.Ingredients) == 0 {
		return 0, missing
	}

	normalized := make([]string, 0, len(selectedIngredients))
	for _, sel := range selectedIngredients {
		if n := Normalize(sel); n != "" {
			normalized = append(normalized, n)
		}
	}

	matched := 0
	for _, ing := range candidate.Ingredients {
		name := Normalize(ing.Name)
		found := false
		for _, sel := range normalized {
			if Matches(name, sel) {
				found = true
				break
			}
		}
		if found {
			matched++
		} else {
			missing = append(missing, common.FormatMissingIngredient(ing))
		}
	}

	percentage := 100 * matched / len(candidate.Ingredients)
	return percentage, missing
}
