package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"gondola-rental/internal/bootstrap"
	"gondola-rental/internal/handler"
	"gondola-rental/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	app, err := bootstrap.New()
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer app.Close()

	handlers := handler.NewHandlers(app.Services)

	server := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(app.Logger),
	})

	server.Use(recover.New())
	server.Use(middleware.RequestLogger(app.Logger))
	server.Use(cors.New(cors.Config{
		AllowOrigins: app.Config.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	handler.SetupRoutes(server, handlers, app.Services.Auth)

	app.Logger.Info().Str("port", app.Config.Port).Msg("server starting")
	if err := server.Listen(":" + app.Config.Port); err != nil {
		app.Logger.Error().Err(err).Msg("server stopped")
		app.Close()
		os.Exit(1)
	}
}
