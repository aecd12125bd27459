package suggestion

import (
	"context"
	"sync"

	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜推薦引擎
// 無狀態且以請求為範圍：選定食材 → 聚合 → 逐候選取得明細 → 評分 → 排序
type Service struct {
	source               DataSource
	aggregator           *Aggregator
	estimator            *Estimator
	maxConcurrentFetches int
}

// NewService 創建食譜推薦引擎
func NewService(source DataSource, cfg *config.Config) *Service {
	return &Service{
		source:               source,
		aggregator:           NewAggregator(source, cfg.Suggestion.MaxIngredientsQueried, cfg.Suggestion.MaxCandidates),
		estimator:            NewEstimator(cfg.Suggestion.EstimateSeed),
		maxConcurrentFetches: cfg.Suggestion.MaxConcurrentFetches,
	}
}

// GetSuggestions 依選定食材產生排序後的食譜建議
// 空輸入直接回傳空清單，不發出任何網路請求
// 個別候選的取得或評分失敗只會讓該候選被捨棄，最壞結果是部分或空的建議清單
func (s *Service) GetSuggestions(ctx context.Context, selectedIngredients []string) []common.RecipeSuggestion {
	suggestions := make([]common.RecipeSuggestion, 0)

	if len(selectedIngredients) == 0 {
		return suggestions
	}

	candidates := s.aggregator.Aggregate(ctx, selectedIngredients)
	if len(candidates) == 0 {
		return suggestions
	}

	// 並行取得每個候選的完整食譜，結果依請求順序收集
	// 不論哪個請求先完成，輸出順序都是確定的
	fetched := make([]*common.RecipeCandidate, len(candidates))
	sem := make(chan struct{}, s.maxConcurrentFetches)
	var wg sync.WaitGroup

	for i, summary := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, id string) {
			defer wg.Done()
			defer func() { <-sem }()

			candidate, err := s.source.GetByID(ctx, id)
			if err != nil {
				// 單一候選失敗不中止其他請求，該候選直接捨棄
				common.LogWarn("候選食譜取得失敗，捨棄該候選",
					zap.String("id", id),
					zap.Error(err),
				)
				return
			}
			fetched[idx] = candidate
		}(i, summary.ID)
	}
	wg.Wait()

	for _, candidate := range fetched {
		if candidate == nil {
			continue
		}
		matchPercentage, missingIngredients := Score(candidate, selectedIngredients)
		suggestions = append(suggestions, s.assemble(candidate, matchPercentage, missingIngredients))
	}

	Rank(suggestions)

	common.LogInfo("食譜建議產生完成",
		zap.Int("選定食材數", len(selectedIngredients)),
		zap.Int("候選數", len(candidates)),
		zap.Int("建議數", len(suggestions)),
	)

	return suggestions
}

// GetDetail 取得單一食譜的完整明細
// 不在選擇情境內，符合百分比固定為 100 且缺少清單為空
// 查無紀錄時錯誤會回傳給呼叫端，由上層決定如何呈現
func (s *Service) GetDetail(ctx context.Context, recipeID string) (*common.RecipeSuggestion, error) {
	candidate, err := s.source.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := s.assemble(candidate, 100, []string{})
	return &result, nil
}
