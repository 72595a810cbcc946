package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mugeshkumards/resume-entity-extractor/config"
	"github.com/mugeshkumards/resume-entity-extractor/controllers"
	"github.com/mugeshkumards/resume-entity-extractor/extractor"
	"github.com/mugeshkumards/resume-entity-extractor/middleware"
	"github.com/mugeshkumards/resume-entity-extractor/services"
	"github.com/mugeshkumards/resume-entity-extractor/utils"
)

func setupRouter(cfg config.AppConfig, ctrl *controllers.ExtractController) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.MaxRequestSize(cfg.MaxUploadSize))

	r.GET("/api/health", ctrl.Health)

	api := r.Group("/api")
	api.Use(middleware.NewRateLimiter(60, time.Minute).Limit())
	api.Use(middleware.ValidateContentType("application/json", "multipart/form-data"))
	if cfg.JWTSecret != "" {
		api.Use(middleware.RequireAuth(cfg.JWTSecret))
	}

	api.POST("/extract", ctrl.ExtractFromText)
	api.POST("/extract/export", ctrl.ExportResult)
	api.POST("/extract/s3", ctrl.ExtractFromS3)
	api.POST("/resume/parse", ctrl.ParseResume)

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogWarn("no .env file found, using environment as-is")
	}
	cfg := config.GetAppConfig()

	// The NLP pipeline must load at startup; a broken install is fatal here
	// rather than at request time.
	ex, err := extractor.New()
	if err != nil {
		log.Fatalf("failed to initialize extractor: %v", err)
	}

	s3Service, err := services.NewS3Service(cfg.S3)
	if err != nil {
		utils.LogWarn("S3 endpoint disabled", err.Error())
		s3Service = nil
	}

	ctrl := controllers.NewExtractController(ex, s3Service)
	r := setupRouter(cfg, ctrl)

	utils.LogInfo("starting server", gin.H{"port": cfg.Port, "env": cfg.Environment})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
