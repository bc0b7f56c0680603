package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// Loader handles loading planning scenarios from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadContracts loads delivery contracts from a CSV file
func (l *Loader) LoadContracts(filename string) ([]*entities.Contract, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open contracts file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read contracts CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("contracts CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"id", "product", "destination", "client", "units_per_day"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("contracts CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var contracts []*entities.Contract
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("contracts CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		contract, err := parseContract(record)
		if err != nil {
			return nil, fmt.Errorf("contracts CSV row %d: %w", i+2, err)
		}

		contracts = append(contracts, contract)
	}

	return contracts, nil
}

// LoadStocks loads stock observations from a CSV file
func (l *Loader) LoadStocks(filename string) ([]entities.StockObservation, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open stocks file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read stocks CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("stocks CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"kind", "location", "material", "amount"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("stocks CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var observations []entities.StockObservation
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("stocks CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		observation, err := parseStockObservation(record)
		if err != nil {
			return nil, fmt.Errorf("stocks CSV row %d: %w", i+2, err)
		}

		observations = append(observations, observation)
	}

	return observations, nil
}

// LoadMakeRows loads production assignments from a CSV file
func (l *Loader) LoadMakeRows(filename string) ([]entities.MakeRow, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open make file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read make CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("make CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"material", "base"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("make CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var rows []entities.MakeRow
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("make CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		rows = append(rows, entities.MakeRow{
			Material: strings.TrimSpace(record[0]),
			Base:     strings.TrimSpace(record[1]),
		})
	}

	return rows, nil
}

// LoadRecipeLines loads recipe lines from a CSV file
func (l *Loader) LoadRecipeLines(filename string) ([]entities.RecipeLine, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipes file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("recipes CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"output", "output_qty", "input", "input_qty"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("recipes CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var lines []entities.RecipeLine
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("recipes CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		line, err := parseRecipeLine(record)
		if err != nil {
			return nil, fmt.Errorf("recipes CSV row %d: %w", i+2, err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseContract(record []string) (*entities.Contract, error) {
	id := strings.TrimSpace(record[0])
	if id == "" {
		return nil, fmt.Errorf("contract id cannot be empty")
	}

	unitsPerDay, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid units_per_day: %s", record[4])
	}

	return &entities.Contract{
		ID:          id,
		Product:     strings.TrimSpace(record[1]),
		Destination: strings.TrimSpace(record[2]),
		Client:      strings.TrimSpace(record[3]),
		UnitsPerDay: unitsPerDay,
	}, nil
}

func parseStockObservation(record []string) (entities.StockObservation, error) {
	kind, err := parseLocationKind(record[0])
	if err != nil {
		return entities.StockObservation{}, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return entities.StockObservation{}, fmt.Errorf("invalid amount: %s", record[3])
	}

	return entities.StockObservation{
		Kind:     kind,
		Location: strings.TrimSpace(record[1]),
		Material: strings.TrimSpace(record[2]),
		Amount:   amount,
	}, nil
}

func parseRecipeLine(record []string) (entities.RecipeLine, error) {
	outputQty, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return entities.RecipeLine{}, fmt.Errorf("invalid output_qty: %s", record[1])
	}

	inputQty, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return entities.RecipeLine{}, fmt.Errorf("invalid input_qty: %s", record[3])
	}

	return entities.RecipeLine{
		Output:    strings.TrimSpace(record[0]),
		OutputQty: outputQty,
		Input:     strings.TrimSpace(record[2]),
		InputQty:  inputQty,
	}, nil
}

func parseLocationKind(s string) (entities.LocationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base":
		return entities.LocationBase, nil
	case "ship":
		return entities.LocationShip, nil
	case "market":
		return entities.LocationMarket, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (expected 'base', 'ship' or 'market')", s)
	}
}
