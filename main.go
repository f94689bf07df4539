package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/hematwoi/backend/internal/config"
	"github.com/hematwoi/backend/internal/digest"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.Server.Mode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.Log.Format == "" && gin.IsDebugging()) || cfg.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory
	err = os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	cache := digest.NewCache(models.DB, cfg.CacheTTL())
	digestService := digest.NewService(models.DB, cache, loc)

	r, teardown, err := router.Router(cfg, digestService)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = r.Run(cfg.Server.Address)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
}
