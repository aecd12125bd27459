package suggestion

import (
	"sort"

	"recipe-suggester/internal/pkg/common"
)

// Rank 依符合百分比由高到低穩定排序
// 同分者維持聚合時的先後順序；截斷已在聚合階段完成，此處不再另設上限
func Rank(suggestions []common.RecipeSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchPercentage > suggestions[j].MatchPercentage
	})
}
