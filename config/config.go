package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server        Server
	Database      Database
	Redis         Redis
	AMQP          AMQP
	AWS           AWS
	RapidAPI      RapidAPI
	Telemetry     Telemetry
	GeminiApiKey  string `json:"-"`
	GeminiModel   string
	YouTubeApiKey string `json:"-"`
}

type Server struct {
	Port string
	Mode string
}

type Database struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
	// DSN overrides the individual fields when set. For sqlite it is the file path.
	DSN string `json:"-"`
}

type Redis struct {
	URL string `json:"-"`
	TTL time.Duration
}

type AMQP struct {
	URL      string `json:"-"`
	Exchange string
}

type AWS struct {
	Region  string
	ModelID string
}

type RapidAPI struct {
	Key      string `json:"-"`
	UniqueID string `json:"-"`
}

type Telemetry struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("REDIS_TTL", "5m")
	viper.SetDefault("AMQP_EXCHANGE", "quizforge.events")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("OTEL_SERVICE_NAME", "quizforge")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.DSN = viper.GetString("DATABASE_DSN")

	config.Redis.URL = viper.GetString("REDIS_URL")
	config.Redis.TTL = viper.GetDuration("REDIS_TTL")

	config.AMQP.URL = viper.GetString("AMQP_URL")
	config.AMQP.Exchange = viper.GetString("AMQP_EXCHANGE")

	config.AWS.Region = viper.GetString("AWS_REGION")
	config.AWS.ModelID = viper.GetString("BEDROCK_MODEL_ID")

	config.RapidAPI.Key = viper.GetString("RAPID_API_KEY")
	config.RapidAPI.UniqueID = viper.GetString("RAPID_API_UNIQUE_ID")

	config.Telemetry.Enabled = viper.GetBool("OTEL_ENABLED")
	config.Telemetry.ServiceName = viper.GetString("OTEL_SERVICE_NAME")
	config.Telemetry.OTLPEndpoint = viper.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.YouTubeApiKey = viper.GetString("YOUTUBE_API_KEY")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil

}
