package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"gondola-rental/internal/bootstrap"
	"gondola-rental/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	app, err := bootstrap.New()
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		bootstrap.ReportStartupFailure(domain.JobUserDigest, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.RunJob(ctx, domain.JobUserDigest)

	stop()
	app.Close()
	os.Exit(code)
}
