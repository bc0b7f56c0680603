package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
	"github.com/tycoontools/gtplan/pkg/infrastructure/gtapi"
	"github.com/tycoontools/gtplan/pkg/infrastructure/repositories/csv"
	"github.com/tycoontools/gtplan/pkg/infrastructure/repositories/sqlite"
	"github.com/tycoontools/gtplan/pkg/interfaces/cli/output"
	"github.com/tycoontools/gtplan/pkg/planner"
)

// Config holds configuration for the plan command
type Config struct {
	ScenarioDir   string
	ContractsFile string
	StocksFile    string
	MakeFile      string
	RecipesFile   string
	OutputDir     string
	Format        string
	Verbose       bool
	Help          bool

	// Live mode: stocks and recipes from the game API, contracts and make
	// rows from the local database.
	FromAPI    bool
	APIKey     string
	APIBaseURL string
	CacheTTL   time.Duration
	DBPath     string
}

// PlanCommand loads a scenario, runs the planning pipeline, and renders the
// result
type PlanCommand struct {
	config Config
	log    zerolog.Logger
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config, log zerolog.Logger) *PlanCommand {
	return &PlanCommand{
		config: config,
		log:    log,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var (
		contracts    []*entities.Contract
		observations []entities.StockObservation
		makeRows     []entities.MakeRow
		recipeLines  []entities.RecipeLine
		err          error
	)
	if c.config.FromAPI {
		contracts, observations, makeRows, recipeLines, err = c.loadFromAPI(ctx)
	} else {
		contracts, observations, makeRows, recipeLines, err = c.loadFromCSV()
	}
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("Loaded scenario:\n")
		fmt.Printf("  Contracts: %d\n", len(contracts))
		fmt.Printf("  Stock observations: %d\n", len(observations))
		fmt.Printf("  Make rows: %d\n", len(makeRows))
		fmt.Printf("  Recipe lines: %d\n", len(recipeLines))
		fmt.Println()
	}

	startTime := time.Now()
	result := planner.Plan(contracts, observations, makeRows, recipeLines)
	planTime := time.Since(startTime)

	c.log.Debug().Dur("elapsed", planTime).Msg("planning pass complete")

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		PlanTime:  planTime,
	}
	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

// loadFromCSV loads the scenario from CSV files
func (c *PlanCommand) loadFromCSV() ([]*entities.Contract, []entities.StockObservation, []entities.MakeRow, []entities.RecipeLine, error) {
	files, err := c.resolveInputFiles()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to resolve input files: %w", err)
	}

	loader := csv.NewLoader()

	contracts, err := loader.LoadContracts(files["Contracts"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading contracts: %w", err)
	}
	observations, err := loader.LoadStocks(files["Stocks"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading stocks: %w", err)
	}
	makeRows, err := loader.LoadMakeRows(files["Make"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading make rows: %w", err)
	}
	recipeLines, err := loader.LoadRecipeLines(files["Recipes"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading recipes: %w", err)
	}

	return contracts, observations, makeRows, recipeLines, nil
}

// loadFromAPI pulls stocks and recipes from the game API and contracts and
// make rows from the local database
func (c *PlanCommand) loadFromAPI(ctx context.Context) ([]*entities.Contract, []entities.StockObservation, []entities.MakeRow, []entities.RecipeLine, error) {
	store, err := sqlite.Open(c.config.DBPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	contracts, err := store.GetAllContracts()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading contracts: %w", err)
	}
	storedRows, err := store.GetAllMakeRows()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading make rows: %w", err)
	}
	makeRows := make([]entities.MakeRow, 0, len(storedRows))
	for _, row := range storedRows {
		makeRows = append(makeRows, *row)
	}

	opts := []gtapi.Option{gtapi.WithLogger(c.log)}
	if c.config.APIBaseURL != "" {
		opts = append(opts, gtapi.WithBaseURL(c.config.APIBaseURL))
	}
	if c.config.CacheTTL > 0 {
		opts = append(opts, gtapi.WithCacheTTL(c.config.CacheTTL))
	}
	client := gtapi.NewClient(c.config.APIKey, opts...)

	observations, err := client.FetchAllStocks(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error fetching stocks: %w", err)
	}
	recipeLines, err := client.BuildRecipeLines(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error fetching recipes: %w", err)
	}

	return contracts, observations, makeRows, recipeLines, nil
}

// validateInputs validates the command configuration
func (c *PlanCommand) validateInputs() error {
	if c.config.FromAPI {
		if c.config.DBPath == "" {
			return fmt.Errorf("live mode requires a database path")
		}
		return nil
	}
	if c.config.ScenarioDir == "" &&
		(c.config.ContractsFile == "" || c.config.StocksFile == "" ||
			c.config.MakeFile == "" || c.config.RecipesFile == "") {
		return fmt.Errorf("must specify either -scenario directory or individual CSV files")
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use
func (c *PlanCommand) resolveInputFiles() (map[string]string, error) {
	var contractsPath, stocksPath, makePath, recipesPath string

	if c.config.ScenarioDir != "" {
		// Use scenario directory
		contractsPath = filepath.Join(c.config.ScenarioDir, "contracts.csv")
		stocksPath = filepath.Join(c.config.ScenarioDir, "stocks.csv")
		makePath = filepath.Join(c.config.ScenarioDir, "make.csv")
		recipesPath = filepath.Join(c.config.ScenarioDir, "recipes.csv")
	} else {
		// Use individual files
		contractsPath = c.config.ContractsFile
		stocksPath = c.config.StocksFile
		makePath = c.config.MakeFile
		recipesPath = c.config.RecipesFile
	}

	files := map[string]string{
		"Contracts": contractsPath,
		"Stocks":    stocksPath,
		"Make":      makePath,
		"Recipes":   recipesPath,
	}

	// Validate files exist
	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	return files, nil
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Printf(`gtplan - contract logistics planner for Galactic Tycoons

USAGE:
    gtplan -scenario <directory>               # Use scenario directory with CSV files
    gtplan -contracts <file> -stocks <file> .. # Use individual CSV files
    gtplan -from-api                           # Live stocks and recipes from the game API

OPTIONS:
    -scenario <dir>     Path to scenario directory containing CSV files
    -contracts <file>   Path to contracts CSV file
    -stocks <file>      Path to stocks CSV file
    -make <file>        Path to make CSV file
    -recipes <file>     Path to recipes CSV file
    -from-api           Fetch stocks and recipes from the game API;
                        contracts and make rows come from the local database
    -db <file>          Path to the local database (default: gtplan.db)
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv (default: text)
    -verbose            Enable verbose output
    -help               Show this help message

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── contracts.csv   # Delivery contracts
    ├── stocks.csv      # Stock observations per location
    ├── make.csv        # Locally produced materials and their bases
    └── recipes.csv     # Recipe lines (one input per line)

CSV FILE FORMATS:

contracts.csv:
    id,product,destination,client,units_per_day
    c1,Iron,Base A,Acme Shipping,100

stocks.csv:
    kind,location,material,amount
    base,Base A,Iron,40.5
    ship,Hauler One,Coal,12
    market,Exchange,Glass,3

make.csv:
    material,base
    Alloy,Base B

recipes.csv:
    output,output_qty,input,input_qty
    Alloy,1,Iron,2
    Alloy,1,Coal,3

EXAMPLES:
    # Run the bundled example scenario
    gtplan -scenario example/two_bases -verbose

    # Plan against live game data
    GT_API_KEY=... gtplan -from-api

    # Generate JSON output
    gtplan -scenario example/two_bases -format json -output results/
`)
}
