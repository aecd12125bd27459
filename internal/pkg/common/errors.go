package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 回傳原始錯誤，支援 errors.Is / errors.As
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓包裝後的錯誤仍可用 errors.Is 判斷種類
func (e *CustomError) Is(target error) bool {
	var ce *CustomError
	if errors.As(target, &ce) {
		return e.Code == ce.Code
	}
	return false
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WrapError 以預定義錯誤為種類，包裝原始錯誤
func WrapError(kind *CustomError, err error) *CustomError {
	return &CustomError{
		Code:    kind.Code,
		Message: kind.Message,
		Status:  kind.Status,
		Err:     err,
	}
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 408
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504

	// 業務錯誤代碼
	ErrCodeRecipeNotFound = "RECIPE_NOT_FOUND" // 404
	ErrCodeNetworkError   = "NETWORK_ERROR"    // 502
	ErrCodeDecodeError    = "DECODE_ERROR"     // 502
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "服務暫時不可用", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "網關超時", http.StatusGatewayTimeout, nil)

	// 業務錯誤：食譜資料來源的三種失敗型態
	ErrRecipeNotFound = NewError(ErrCodeRecipeNotFound, "找不到食譜", http.StatusNotFound, nil)
	ErrNetworkError   = NewError(ErrCodeNetworkError, "資料來源連線失敗", http.StatusBadGateway, nil)
	ErrDecodeError    = NewError(ErrCodeDecodeError, "資料來源回應格式錯誤", http.StatusBadGateway, nil)

	// 快取錯誤
	ErrCacheMiss     = NewError("CACHE_MISS", "快取未命中", http.StatusNotFound, nil)
	ErrCacheFull     = NewError("CACHE_FULL", "緩存已滿", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled = NewError("CACHE_DISABLED", "緩存已禁用", http.StatusServiceUnavailable, nil)
)

// IsRecipeNotFound 檢查是否為「找不到食譜」錯誤
func IsRecipeNotFound(err error) bool {
	return errors.Is(err, ErrRecipeNotFound)
}

// IsNetworkError 檢查是否為資料來源連線錯誤
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetworkError)
}

// IsDecodeError 檢查是否為資料來源解析錯誤
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecodeError)
}
