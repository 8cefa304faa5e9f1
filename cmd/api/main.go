package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/KixPanganiban/hackrecap/db"
	"github.com/KixPanganiban/hackrecap/internal/config"
	"github.com/KixPanganiban/hackrecap/internal/handler"
	"github.com/KixPanganiban/hackrecap/internal/repository"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache handler.ResponseCache
	if err := db.ConnectRedis(cfg.RedisURL); err != nil {
		slog.Warn("redis unavailable, serving uncached", "error", err)
	} else {
		defer db.CloseRedis()
		cache = db.NewCache(db.Redis)
	}

	storyRepo := repository.NewStoryRepository(db.DB)
	storyHandler := handler.NewStoryHandler(storyRepo)

	r := gin.Default()
	r.LoadHTMLGlob("web/*.html")

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", handler.CacheResponse(cache), storyHandler.GetIndex)
	r.GET("/api/stories", handler.CacheResponse(cache), storyHandler.GetStories)
	r.GET("/health", storyHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
