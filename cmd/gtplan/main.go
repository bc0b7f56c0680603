package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tycoontools/gtplan/pkg/config"
	"github.com/tycoontools/gtplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		contractsFile = flag.String("contracts", "", "Path to contracts CSV file")
		stocksFile    = flag.String("stocks", "", "Path to stocks CSV file")
		makeFile      = flag.String("make", "", "Path to make CSV file")
		recipesFile   = flag.String("recipes", "", "Path to recipes CSV file")
		fromAPI       = flag.Bool("from-api", false, "Fetch stocks and recipes from the game API")
		dbPath        = flag.String("db", "", "Path to the local database (default from GT_DB_PATH)")
		outputDir     = flag.String("output", "", "Output directory for results (optional)")
		format        = flag.String("format", "text", "Output format: text, json, csv")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *dbPath == "" {
		*dbPath = cfg.DBPath
	}

	cmdConfig := commands.Config{
		ScenarioDir:   *scenarioDir,
		ContractsFile: *contractsFile,
		StocksFile:    *stocksFile,
		MakeFile:      *makeFile,
		RecipesFile:   *recipesFile,
		OutputDir:     *outputDir,
		Format:        *format,
		Verbose:       *verbose,
		Help:          *help,
		FromAPI:       *fromAPI,
		APIKey:        cfg.APIKey,
		APIBaseURL:    cfg.APIBaseURL,
		CacheTTL:      time.Duration(cfg.CacheTTLSeconds) * time.Second,
		DBPath:        *dbPath,
	}

	cmd := commands.NewPlanCommand(cmdConfig, log.Logger)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
