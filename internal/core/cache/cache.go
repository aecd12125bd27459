package cache

import (
	"context"

	"recipe-suggester/internal/infrastructure/config"
)

// Store 資料來源回應快取的統一介面
// 值為序列化後的 JSON 字串，鍵由呼叫端決定（通常為請求 URL）
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// NewStore 依設定建立快取後端；快取關閉時回傳 nil
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisStore(&cfg.Cache)
	default:
		return NewManager(cfg), nil
	}
}
