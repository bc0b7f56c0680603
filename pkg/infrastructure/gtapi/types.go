package gtapi

import "github.com/shopspring/decimal"

// Company describes the player company: its bases, ships, and the optional
// Exchange warehouse where sell orders sit.
type Company struct {
	Name                string  `json:"name"`
	Cash                float64 `json:"cash"`
	PR                  float64 `json:"pr"`
	Bases               []Base  `json:"bases"`
	Ships               []Ship  `json:"ships"`
	ExchangeWarehouseID int64   `json:"exWhId"`
}

// Base is a planetary base owned by the company.
type Base struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	WarehouseID int64  `json:"warehouseId"`
	PlanetID    int64  `json:"planetId"`
}

// Ship is a cargo ship owned by the company.
type Ship struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	WarehouseID int64  `json:"warehouseId"`
}

// Warehouse is the content listing of a single warehouse. Materials are
// reported by numeric id; names are joined in via the price list.
type Warehouse struct {
	Capacity *float64       `json:"cap"`
	Mats     []WarehouseMat `json:"mats"`
}

// WarehouseMat is one material line within a warehouse.
type WarehouseMat struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"am"`
}

// PriceRow is one row of the exchange price list. Besides prices it is the
// authoritative material id to name mapping.
type PriceRow struct {
	MatID        int64           `json:"matId"`
	MatName      string          `json:"matName"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
}

// GameData is the static game database: the material catalog and all
// production recipes.
type GameData struct {
	Materials []GameMaterial `json:"materials"`
	Recipes   []GameRecipe   `json:"recipes"`
}

// GameMaterial is a catalog entry mapping a material id to its name.
type GameMaterial struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GameRecipe is a raw recipe: outputs produced per batch and inputs consumed.
type GameRecipe struct {
	Outputs []GameAmount `json:"outputs"`
	Inputs  []GameAmount `json:"inputs"`
}

// GameAmount is a (material id, amount) pair inside a recipe.
type GameAmount struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"am"`
}
