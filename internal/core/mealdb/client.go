package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"recipe-suggester/internal/core/cache"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 食譜資料來源客戶端，對接 TheMealDB 相容的 JSON API
type Client struct {
	client *resty.Client
	config *config.Config
	store  cache.Store
}

// NewClient 創建資料來源客戶端；store 可為 nil（不啟用回應快取）
func NewClient(cfg *config.Config, store cache.Store) *Client {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", cfg.MealDB.BaseURL, cfg.MealDB.APIKey)).
		SetTimeout(cfg.MealDB.Timeout)

	return &Client{
		client: client,
		config: cfg,
		store:  store,
	}
}

// SearchByIngredient 依食材名稱搜尋候選食譜摘要
// 資料來源以 "meals": null 表示查無結果，視為空清單而非錯誤
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string) ([]common.CandidateSummary, error) {
	body, err := c.fetch(ctx, "/filter.php", "i", ingredient)
	if err != nil {
		return nil, err
	}

	var result filterResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, common.WrapError(common.ErrDecodeError, fmt.Errorf("failed to parse search response: %w", err))
	}

	summaries := make([]common.CandidateSummary, 0, len(result.Meals))
	for _, meal := range result.Meals {
		summaries = append(summaries, common.CandidateSummary{
			ID:        meal.ID,
			Title:     meal.Title,
			Thumbnail: meal.Thumbnail,
		})
	}

	common.LogDebug("依食材搜尋完成",
		zap.String("食材", ingredient),
		zap.Int("結果數", len(summaries)),
	)

	return summaries, nil
}

// GetByID 依識別碼取得完整食譜
// 查無紀錄時回傳 RECIPE_NOT_FOUND
func (c *Client) GetByID(ctx context.Context, id string) (*common.RecipeCandidate, error) {
	body, err := c.fetch(ctx, "/lookup.php", "i", id)
	if err != nil {
		return nil, err
	}

	var result lookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, common.WrapError(common.ErrDecodeError, fmt.Errorf("failed to parse lookup response: %w", err))
	}

	if len(result.Meals) == 0 {
		return nil, common.WrapError(common.ErrRecipeNotFound, fmt.Errorf("no recipe record for id %q", id))
	}

	candidate := candidateFromRecord(result.Meals[0])
	if candidate.ID == "" {
		candidate.ID = id
	}

	return candidate, nil
}

// fetch 發送 GET 請求並回傳原始回應內容，必要時走快取
func (c *Client) fetch(ctx context.Context, endpoint, param, value string) ([]byte, error) {
	cacheKey := fmt.Sprintf("%s?%s=%s", endpoint, param, value)

	// 檢查快取
	if c.store != nil {
		if cached, err := c.store.Get(ctx, cacheKey); err == nil && cached != "" {
			return []byte(cached), nil
		}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam(param, value).
		Get(endpoint)

	if err != nil {
		common.LogError("資料來源請求失敗",
			zap.Error(err),
			zap.String("endpoint", endpoint),
		)
		return nil, common.WrapError(common.ErrNetworkError, fmt.Errorf("failed to send request: %w", err))
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("資料來源回傳錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("endpoint", endpoint),
		)
		return nil, common.WrapError(common.ErrNetworkError, fmt.Errorf("data source returned status %d", resp.StatusCode()))
	}

	body := resp.Body()

	// 寫入快取；失敗僅記錄，不影響本次請求
	if c.store != nil {
		if err := c.store.Set(ctx, cacheKey, string(body)); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err))
		}
	}

	return body, nil
}
