package suggestion

import (
	"context"

	"recipe-suggester/internal/pkg/common"

	"go.uber.org/zap"
)

// Aggregator 將多個食材的搜尋結果合併為唯一候選集合
type Aggregator struct {
	source                DataSource
	maxIngredientsQueried int
	maxCandidates         int
}

// NewAggregator 創建候選食譜聚合器
func NewAggregator(source DataSource, maxIngredientsQueried, maxCandidates int) *Aggregator {
	return &Aggregator{
		source:                source,
		maxIngredientsQueried: maxIngredientsQueried,
		maxCandidates:         maxCandidates,
	}
}

// Aggregate 依序查詢前 maxIngredientsQueried 個食材並合併結果
// 以食譜識別碼去重，保留首次出現的順序，最後截斷至 maxCandidates
// 單一食材查詢失敗只略過該食材；全部失敗時回傳空清單而非錯誤
func (a *Aggregator) Aggregate(ctx context.Context, selectedIngredients []string) []common.CandidateSummary {
	queried := selectedIngredients
	if len(queried) > a.maxIngredientsQueried {
		queried = queried[:a.maxIngredientsQueried]
	}

	seen := make(map[string]struct{})
	candidates := make([]common.CandidateSummary, 0, a.maxCandidates)

	for _, raw := range queried {
		term := queryTerm(Normalize(raw))
		if term == "" {
			continue
		}

		results, err := a.source.SearchByIngredient(ctx, term)
		if err != nil {
			common.LogWarn("食材搜尋失敗，略過該食材",
				zap.String("食材", raw),
				zap.String("關鍵字", term),
				zap.Error(err),
			)
			continue
		}

		for _, summary := range results {
			if _, dup := seen[summary.ID]; dup {
				continue
			}
			seen[summary.ID] = struct{}{}
			candidates = append(candidates, summary)
		}
	}

	if len(candidates) > a.maxCandidates {
		candidates = candidates[:a.maxCandidates]
	}

	common.LogDebug("候選食譜聚合完成",
		zap.Int("查詢食材數", len(queried)),
		zap.Int("候選數", len(candidates)),
	)

	return candidates
}
