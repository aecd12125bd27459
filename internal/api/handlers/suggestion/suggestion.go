package suggestion

import (
	"net/http"

	suggestionService "recipe-suggester/internal/core/suggestion"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SuggestionsRequest 依可用食材產生食譜建議的請求
type SuggestionsRequest struct {
	Ingredients []string `json:"ingredients"` // 使用者選定的食材名稱
}

// SuggestionsResponse 食譜建議清單
type SuggestionsResponse struct {
	Suggestions []common.RecipeSuggestion `json:"suggestions"`
	Total       int                       `json:"total"`
}

// Handler 食譜建議處理程序
type Handler struct {
	suggestionService *suggestionService.Service
}

// NewHandler 創建新的食譜建議處理程序
func NewHandler(svc *suggestionService.Service) *Handler {
	return &Handler{
		suggestionService: svc,
	}
}

// HandleSuggestions 依選定食材回傳排序後的食譜建議
func (h *Handler) HandleSuggestions(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理食譜建議請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	// 空輸入為合法請求，直接回傳空清單，引擎不會發出網路呼叫
	suggestions := h.suggestionService.GetSuggestions(c.Request.Context(), req.Ingredients)

	c.JSON(http.StatusOK, SuggestionsResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	})
}

// HandleRecipeDetail 取得單一食譜的完整明細
func (h *Handler) HandleRecipeDetail(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	recipeID := c.Param("id")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe id is required", "code": common.ErrCodeInvalidRequest})
		return
	}

	detail, err := h.suggestionService.GetDetail(c.Request.Context(), recipeID)
	if err != nil {
		if common.IsRecipeNotFound(err) {
			common.LogInfo("查無食譜",
				zap.String("id", recipeID),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found", "code": common.ErrCodeRecipeNotFound})
			return
		}

		common.LogError("食譜明細取得失敗",
			zap.Error(err),
			zap.String("id", recipeID),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch recipe", "code": common.ErrCodeNetworkError})
		return
	}

	c.JSON(http.StatusOK, detail)
}
