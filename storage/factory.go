package storage

import (
	"context"

	"reply-pilot/config"
	"reply-pilot/logger"
)

// NewAdapter builds the backend selected in configuration. Selection
// happens exactly once at startup; backend failures at init time fall back
// to the in-process map so the service can still come up.
func NewAdapter(ctx context.Context, cfg config.AppConfig) Adapter {
	switch cfg.Storage.Backend {
	case "redis":
		adapter, err := NewRedisAdapter(config.RedisURL())
		if err == nil {
			err = adapter.Ping(ctx)
		}
		if err != nil {
			logger.Log.Warnf("redis storage unavailable, falling back to in-memory: %v", err)
			return NewMemoryAdapter()
		}
		logger.Log.Info("using redis storage adapter")
		return adapter

	case "mongo":
		adapter, err := NewMongoAdapter(ctx, config.MongoURI(), cfg.Storage.MongoDBName)
		if err != nil {
			logger.Log.Warnf("mongo storage unavailable, falling back to in-memory: %v", err)
			return NewMemoryAdapter()
		}
		logger.Log.Info("using mongo storage adapter")
		return adapter

	default:
		logger.Log.Info("using in-memory storage adapter")
		return NewMemoryAdapter()
	}
}
