package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/config"
	"github.com/KirkDiggler/scorepad/internal/handlers/discord"
	"github.com/KirkDiggler/scorepad/internal/repositories/player"
	tarotRepo "github.com/KirkDiggler/scorepad/internal/repositories/tarot"
	yahtzeeRepo "github.com/KirkDiggler/scorepad/internal/repositories/yahtzee"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	tarotService "github.com/KirkDiggler/scorepad/internal/services/tarot"
	yahtzeeService "github.com/KirkDiggler/scorepad/internal/services/yahtzee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create player repository")
	}

	tarotGames, err := tarotRepo.NewRedis(&tarotRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create tarot repository")
	}

	yahtzeeGames, err := yahtzeeRepo.NewRedis(&yahtzeeRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create yahtzee repository")
	}

	tarotSvc, err := tarotService.New(&tarotService.Config{
		TarotRepo:     tarotGames,
		PlayerRepo:    playerRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create tarot service")
	}

	yahtzeeSvc, err := yahtzeeService.New(&yahtzeeService.Config{
		YahtzeeRepo:   yahtzeeGames,
		PlayerRepo:    playerRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create yahtzee service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Seed: cfg.MessageSeed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		TarotService:     tarotSvc,
		YahtzeeService:   yahtzeeSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}
