package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/config"
	_ "github.com/lshigami/quizforge/docs" // Swagger docs
	"github.com/lshigami/quizforge/internal/controller"
	factcheckctrl "github.com/lshigami/quizforge/internal/controller/factcheck"
	gamectrl "github.com/lshigami/quizforge/internal/controller/game"
	quizctrl "github.com/lshigami/quizforge/internal/controller/quiz"
	"github.com/lshigami/quizforge/internal/metrics"
	"github.com/lshigami/quizforge/internal/telemetry"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/fx"
)

func NewGinEngine(cfg *config.Config, recorder *metrics.Recorder, tracing *telemetry.Provider) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if tracing.Enabled() {
		r.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	r.Use(recorder.Middleware())

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(recorder.Handler()))
	r.GET("/healthz", controller.Health)

	return r
}

// RegisterRoutes mounts every API controller under /api.
func RegisterRoutes(router *gin.Engine, quiz *quizctrl.QuizController, factCheck *factcheckctrl.FactCheckController, game *gamectrl.GameController) {
	api := router.Group("/api")
	quiz.RegisterRoutes(api.Group("/quiz"))
	factCheck.RegisterRoutes(api.Group("/fact-checks"))
	game.RegisterRoutes(api)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quiz *quizctrl.QuizController,
	factCheck *factcheckctrl.FactCheckController,
	game *gamectrl.GameController,
) {
	RegisterRoutes(router, quiz, factCheck, game)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizForge API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
