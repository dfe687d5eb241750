package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/lshigami/quizforge/config"
	"github.com/lshigami/quizforge/database"
	"github.com/lshigami/quizforge/internal/cache"
	factcheckctrl "github.com/lshigami/quizforge/internal/controller/factcheck"
	gamectrl "github.com/lshigami/quizforge/internal/controller/game"
	quizctrl "github.com/lshigami/quizforge/internal/controller/quiz"
	"github.com/lshigami/quizforge/internal/events"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/lshigami/quizforge/internal/metrics"
	"github.com/lshigami/quizforge/internal/provider"
	"github.com/lshigami/quizforge/internal/repository"
	"github.com/lshigami/quizforge/internal/service"
	"github.com/lshigami/quizforge/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const outboundTimeout = 60 * time.Second

// NewServeCmd starts the HTTP API inside an fx application.
func NewServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*port)
		},
	}
}

func runServer(portFlag string) error {
	app := fx.New(
		// Core Application Components
		fx.Provide(
			func() (*config.Config, error) {
				cfg, err := config.NewConfig()
				if err != nil {
					return nil, err
				}
				if portFlag != "" {
					cfg.Server.Port = portFlag
				}
				return cfg, nil
			},
			database.NewDatabase,
			cache.NewClient,
			events.NewPublisher,
			metrics.NewRecorder,
			telemetry.NewProvider,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			func(db *gorm.DB, client *redis.Client, cfg *config.Config) repository.QuizRepository {
				return cache.WrapQuizRepository(repository.NewQuizRepository(db), client, cfg.Redis.TTL)
			},
			repository.NewParticipantRepository,
			repository.NewFactCheckRepository,
			repository.NewParticipantFactRepository,
		),

		// Content providers and the question pipeline
		fx.Provide(
			func() *http.Client { return &http.Client{Timeout: outboundTimeout} },
			provider.NewBedrockClient,
			provider.NewGeminiClient,
			provider.NewYouTubeClient,
			NewPipeline,
		),

		// Services Layer
		fx.Provide(
			func(p *ingest.Pipeline, quizzes repository.QuizRepository, participants repository.ParticipantRepository, pub events.Publisher) service.QuizService {
				return service.NewQuizService(p, quizzes, participants, pub)
			},
			func(g *provider.GeminiClient, factChecks repository.FactCheckRepository, participants repository.ParticipantFactRepository, pub events.Publisher) service.FactCheckService {
				return service.NewFactCheckService(g, factChecks, participants, pub)
			},
			func(g *provider.GeminiClient) service.GameService {
				return service.NewGameService(g)
			},
		),

		// API Controllers Layer
		fx.Provide(
			quizctrl.NewQuizController,
			factcheckctrl.NewFactCheckController,
			gamectrl.NewGameController,
		),

		fx.Invoke(database.AutoMigrate),
		fx.Invoke(closeOnStop),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return app.Stop(stopCtx)
}

// NewPipeline wires the fetcher and generator. Bedrock is the primary backend
// and Gemini takes over when Bedrock is rate limited.
func NewPipeline(
	cfg *config.Config,
	httpClient *http.Client,
	bedrock *provider.BedrockClient,
	gemini *provider.GeminiClient,
	youtube *provider.YouTubeClient,
	recorder *metrics.Recorder,
) *ingest.Pipeline {
	resolver := ingest.NewVideoResolver(
		provider.NewTranscriptClient(httpClient),
		provider.NewPrimarySummarizer(httpClient, cfg.RapidAPI.Key),
		provider.NewAlternativeSummarizer(httpClient, cfg.RapidAPI.Key, cfg.RapidAPI.UniqueID),
	)
	fetcher := ingest.NewFetcher(provider.NewPDFExtractor(), youtube, resolver, ingest.WithHTTPClient(httpClient))
	generator := ingest.NewGenerator(bedrock, gemini, recorder)
	return ingest.NewPipeline(fetcher, generator, recorder)
}

func closeOnStop(lc fx.Lifecycle, db *gorm.DB, client *redis.Client, pub events.Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := pub.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close event publisher")
			}
			if client != nil {
				if err := client.Close(); err != nil {
					log.Warn().Err(err).Msg("Failed to close redis client")
				}
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
