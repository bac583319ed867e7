package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Study    Study
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	// JWTSecret verifies bearer tokens issued by the external identity provider.
	JWTSecret string
}

// Study holds domain defaults that were previously scattered across handlers.
// Services receive them through this struct so tests can override them.
type Study struct {
	DefaultQuestionCount int
	DefaultMinutesPerDay int
	SessionHistoryDays   int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("DEFAULT_QUESTION_COUNT", 10)
	viper.SetDefault("DEFAULT_STUDY_MINUTES_PER_DAY", 20)
	viper.SetDefault("SESSION_HISTORY_DAYS", 7)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Study.DefaultQuestionCount = viper.GetInt("DEFAULT_QUESTION_COUNT")
	config.Study.DefaultMinutesPerDay = viper.GetInt("DEFAULT_STUDY_MINUTES_PER_DAY")
	config.Study.SessionHistoryDays = viper.GetInt("SESSION_HISTORY_DAYS")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
