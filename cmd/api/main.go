package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"reply-pilot/analytics"
	"reply-pilot/api/router"
	"reply-pilot/config"
	_ "reply-pilot/docs" // swag generated package
	"reply-pilot/eventbus"
	"reply-pilot/generator"
	"reply-pilot/logger"
	"reply-pilot/ratelimit"
	"reply-pilot/services"
	"reply-pilot/storage"
)

// @title           ReplyPilot API
// @version         1.0
// @description     API for generating customer review replies with sentiment analysis and usage analytics
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()

	store := storage.NewAdapter(ctx, cfg)
	defer store.Close()

	bus := eventbus.New(cfg)
	defer bus.Close()

	recorder := analytics.NewRecorder(store, cfg.Analytics.RetentionDays)
	go func() {
		err := bus.Subscribe(ctx, "analytics-recorder", eventbus.TopicGenerationCompleted, analytics.NewEventHandler(recorder))
		if err != nil {
			logger.Log.Errorf("analytics consumer stopped: %v", err)
		}
	}()

	gemini, err := generator.NewGeminiClient(ctx, config.GeminiAPIKey(), cfg.GeminiModel)
	if err != nil {
		log.Fatal(err)
	}

	limiter := ratelimit.New(store, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.RequestsPerDay)

	r := router.New(router.Deps{
		Generation: services.NewGenerationService(gemini, limiter, bus),
		Analytics:  services.NewAnalyticsService(recorder),
		Templates:  services.NewTemplateService(store),
		Store:      store,
	})

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	logger.Log.Infof("listening on :%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
