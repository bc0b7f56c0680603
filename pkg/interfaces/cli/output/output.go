package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	PlanTime  time.Duration
}

// Generate creates output in the specified format
func Generate(result *entities.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *entities.PlanResult, config Config) error {
	fmt.Printf("Plan Summary\n")
	fmt.Printf("============\n\n")

	fmt.Printf("Contracts: %d\n", len(result.ContractStatus))
	fmt.Printf("Transport moves: %d\n", len(result.Transport))
	fmt.Printf("Production orders: %d\n", len(result.Production))
	fmt.Printf("Purchases: %d\n", len(result.Buy))
	fmt.Printf("Ingredient moves: %d\n", len(result.IngredientTransport))
	if config.Verbose {
		fmt.Printf("Plan time: %v\n", config.PlanTime)
	}
	fmt.Println()

	if len(result.ContractStatus) > 0 {
		fmt.Printf("Contract Status:\n")
		fmt.Printf("%-20s %-15s %-10s %-10s %-10s %-8s %-8s\n",
			"Product", "Destination", "Per Day", "Avail", "Missing", "Days", "Status")
		fmt.Printf("%-20s %-15s %-10s %-10s %-10s %-8s %-8s\n",
			"--------------------", "---------------", "----------", "----------", "----------", "--------", "--------")

		for _, row := range result.ContractStatus {
			fmt.Printf("%-20s %-15s %-10d %-10s %-10s %-8s %-8s\n",
				row.Product,
				row.Destination,
				row.UnitsPerDay,
				row.AvailAtDestination.StringFixed(1),
				row.Missing.StringFixed(1),
				row.DaysCovered.StringFixed(2),
				row.Status)
		}
		fmt.Println()
	}

	if len(result.Transport) > 0 {
		fmt.Printf("Transport:\n")
		fmt.Printf("%-20s %-8s %-15s %-15s %s\n",
			"Material", "Units", "From", "To", "Notes")
		fmt.Printf("%-20s %-8s %-15s %-15s %s\n",
			"--------------------", "--------", "---------------", "---------------", "-----")

		for _, row := range result.Transport {
			fmt.Printf("%-20s %-8d %-15s %-15s %s\n",
				row.Material, row.Units, row.From, row.To, row.Notes)
		}
		fmt.Println()
	}

	if len(result.Production) > 0 {
		fmt.Printf("Production:\n")
		fmt.Printf("%-20s %-8s %-15s %s\n",
			"Product", "Units", "Produce At", "Inputs")
		fmt.Printf("%-20s %-8s %-15s %s\n",
			"--------------------", "--------", "---------------", "------")

		for _, row := range result.Production {
			fmt.Printf("%-20s %-8d %-15s %s\n",
				row.Product, row.UnitsPerDay, row.ProduceAt, row.InputsStatus)
		}
		fmt.Println()
	}

	if len(result.Buy) > 0 {
		fmt.Printf("Buy:\n")
		fmt.Printf("%-20s %-8s %s\n", "Material", "Units", "Notes")
		fmt.Printf("%-20s %-8s %s\n", "--------------------", "--------", "-----")

		for _, row := range result.Buy {
			fmt.Printf("%-20s %-8d %s\n", row.Material, row.UnitsPerDay, row.Notes)
		}
		fmt.Println()
	}

	if len(result.IngredientTransport) > 0 {
		fmt.Printf("Ingredient Transport:\n")
		fmt.Printf("%-20s %-8s %-15s %-15s %s\n",
			"Ingredient", "Units", "From", "To", "Notes")
		fmt.Printf("%-20s %-8s %-15s %-15s %s\n",
			"--------------------", "--------", "---------------", "---------------", "-----")

		for _, row := range result.IngredientTransport {
			fmt.Printf("%-20s %-8d %-15s %-15s %s\n",
				row.Ingredient, row.Units, row.From, row.To, row.Notes)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *entities.PlanResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "plan.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("JSON results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes one CSV file per plan table
func generateCSVOutput(result *entities.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := map[string]func(string) error{
		"contract_status.csv":      func(p string) error { return writeStatusCSV(result.ContractStatus, p) },
		"transport.csv":            func(p string) error { return writeTransportCSV(result.Transport, p) },
		"production.csv":           func(p string) error { return writeProductionCSV(result.Production, p) },
		"buy.csv":                  func(p string) error { return writeBuyCSV(result.Buy, p) },
		"ingredient_transport.csv": func(p string) error { return writeIngredientCSV(result.IngredientTransport, p) },
	}
	for name, write := range files {
		path := filepath.Join(config.OutputDir, name)
		if err := write(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if config.Verbose {
		fmt.Printf("CSV results saved to: %s\n", config.OutputDir)
	}
	return nil
}

func writeCSV(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeStatusCSV(rows []entities.ContractStatusRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.ID,
			r.Client,
			r.Product,
			r.Destination,
			strconv.FormatInt(r.UnitsPerDay, 10),
			r.AvailAtDestination.String(),
			r.Missing.String(),
			r.DaysCovered.String(),
			r.Status,
		})
	}
	return writeCSV(filename,
		[]string{"id", "client", "product", "destination", "units_per_day", "avail_at_destination", "missing", "days_covered", "status"},
		records)
}

func writeTransportCSV(rows []entities.TransportRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Material, strconv.FormatInt(r.Units, 10), r.From, r.To, r.Notes,
		})
	}
	return writeCSV(filename, []string{"material", "units", "from", "to", "notes"}, records)
}

func writeProductionCSV(rows []entities.ProductionRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Product, strconv.FormatInt(r.UnitsPerDay, 10), r.ProduceAt, r.InputsStatus, r.Notes,
		})
	}
	return writeCSV(filename, []string{"product", "units_per_day", "produce_at", "inputs_status", "notes"}, records)
}

func writeBuyCSV(rows []entities.BuyRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Material, strconv.FormatInt(r.UnitsPerDay, 10), r.Notes,
		})
	}
	return writeCSV(filename, []string{"material", "units_per_day", "notes"}, records)
}

func writeIngredientCSV(rows []entities.IngredientTransportRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Ingredient, strconv.FormatInt(r.Units, 10), r.From, r.To, r.Notes,
		})
	}
	return writeCSV(filename, []string{"ingredient", "units", "from", "to", "notes"}, records)
}
