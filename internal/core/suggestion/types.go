package suggestion

import (
	"context"

	"recipe-suggester/internal/pkg/common"
)

// DataSource 食譜資料來源介面
// 由 mealdb.Client 實作；測試時可注入假的資料來源
type DataSource interface {
	// SearchByIngredient 依食材名稱搜尋候選食譜摘要
	SearchByIngredient(ctx context.Context, ingredient string) ([]common.CandidateSummary, error)
	// GetByID 依識別碼取得完整食譜，查無紀錄時回傳 RECIPE_NOT_FOUND
	GetByID(ctx context.Context, id string) (*common.RecipeCandidate, error)
}
