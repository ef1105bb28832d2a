package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gbaeke/mcp-demo/pkg/httputil"
	"github.com/gbaeke/mcp-demo/pkg/scrape"
	"github.com/gbaeke/mcp-demo/pkg/search"
	"github.com/gbaeke/mcp-demo/pkg/server"
)

// Information to find out exactly which commit the server was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Printf("%s %s (%s, built %s)\n", server.Name, server.Version, Commit, BuildTime)
		return
	}

	// Stdout carries the MCP protocol, so all diagnostics go to stderr.
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env file")
	}

	log.Info().Str("tag", Tag).Msg("Starting Search and Scrape MCP Server")

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.LogLevel != "" {
		if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			log = log.Level(level)
		}
	}
	if cfg.Search.APIKey == "" {
		log.Warn().Msg("SERPER_API_KEY is not set; search calls will report an error")
	}

	client := httputil.NewClient(cfg.HTTP)
	srv := server.New(log,
		search.NewSerperProvider(cfg.Search, client),
		scrape.NewScraper(cfg.Scrape, client),
	)
	log.Info().Msg("MCP server instance created")

	if err := srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("MCP server exited with error")
	}
}
