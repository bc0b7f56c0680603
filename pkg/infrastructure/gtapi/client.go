// Package gtapi talks to the public Galactic Tycoons HTTP API and turns its
// warehouse and game-data payloads into planner inputs.
package gtapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
)

// DefaultBaseURL is the public API host.
const DefaultBaseURL = "https://api.g2.galactictycoons.com"

// DefaultCacheTTL bounds how often the company and price endpoints are hit.
// The API rate limits aggressively, so responses are reused for a minute.
const DefaultCacheTTL = 60 * time.Second

// Client is a caching client for the Galactic Tycoons public API. Company
// and price responses are cached for the configured TTL; concurrent callers
// share a single upstream request.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	company   *Company
	companyAt time.Time
	prices    []PriceRow
	pricesAt  time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithCacheTTL overrides the response cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// NewClient creates a client authenticating with the given API key. An empty
// key is legal; the API then rate limits by IP instead.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
		ttl:     DefaultCacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("gtapi: create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.log.Debug().Str("url", url).Msg("fetching")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gtapi: %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				return fmt.Errorf("HTTP 429 (rate limited). Try again in %s seconds.", ra)
			}
			return fmt.Errorf("HTTP 429 (rate limited). Try again in a bit.")
		}
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gtapi: decode %s: %w", url, err)
	}
	return nil
}

// FetchCompany returns the company profile, served from cache when fresh.
func (c *Client) FetchCompany(ctx context.Context) (*Company, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.company != nil && c.now().Sub(c.companyAt) < c.ttl {
		c.log.Debug().Msg("company served from cache")
		return c.company, nil
	}

	var company Company
	if err := c.getJSON(ctx, c.baseURL+"/public/company", &company); err != nil {
		return nil, err
	}
	c.company = &company
	c.companyAt = c.now()
	return c.company, nil
}

// FetchWarehouse returns the contents of one warehouse. Warehouse listings
// change with every production tick, so they are never cached.
func (c *Client) FetchWarehouse(ctx context.Context, warehouseID int64) (*Warehouse, error) {
	var warehouse Warehouse
	url := fmt.Sprintf("%s/public/company/warehouse/%d", c.baseURL, warehouseID)
	if err := c.getJSON(ctx, url, &warehouse); err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// FetchPrices returns the exchange price list, served from cache when fresh.
func (c *Client) FetchPrices(ctx context.Context) ([]PriceRow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.prices != nil && c.now().Sub(c.pricesAt) < c.ttl {
		c.log.Debug().Msg("prices served from cache")
		return c.prices, nil
	}

	var payload struct {
		Prices []PriceRow `json:"prices"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/public/exchange/mat-prices", &payload); err != nil {
		return nil, err
	}
	c.prices = payload.Prices
	c.pricesAt = c.now()
	return c.prices, nil
}

// FetchGameData returns the static game database.
func (c *Client) FetchGameData(ctx context.Context) (*GameData, error) {
	var data GameData
	if err := c.getJSON(ctx, c.baseURL+"/gamedata.json", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FetchAllStocks assembles stock observations across every company location:
// each base, each ship, and the Exchange warehouse when the company has one.
// Material ids are translated to names via the price list; materials missing
// from it keep their numeric id as the name.
func (c *Client) FetchAllStocks(ctx context.Context) ([]entities.StockObservation, error) {
	company, err := c.FetchCompany(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := c.FetchPrices(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(prices))
	for _, p := range prices {
		names[p.MatID] = p.MatName
	}

	type location struct {
		kind        entities.LocationKind
		name        string
		warehouseID int64
	}
	var locations []location
	for _, b := range company.Bases {
		locations = append(locations, location{entities.LocationBase, b.Name, b.WarehouseID})
	}
	for _, s := range company.Ships {
		locations = append(locations, location{entities.LocationShip, s.Name, s.WarehouseID})
	}
	if company.ExchangeWarehouseID != 0 {
		locations = append(locations, location{entities.LocationMarket, "Exchange", company.ExchangeWarehouseID})
	}

	var observations []entities.StockObservation
	for _, loc := range locations {
		warehouse, err := c.FetchWarehouse(ctx, loc.warehouseID)
		if err != nil {
			return nil, fmt.Errorf("warehouse %d (%s): %w", loc.warehouseID, loc.name, err)
		}
		for _, mat := range warehouse.Mats {
			if mat.ID == 0 || mat.Amount.IsZero() {
				continue
			}
			name, ok := names[mat.ID]
			if !ok {
				name = strconv.FormatInt(mat.ID, 10)
			}
			observations = append(observations, entities.StockObservation{
				Kind:     loc.kind,
				Location: loc.name,
				Material: name,
				Amount:   mat.Amount,
			})
		}
	}

	c.log.Info().
		Int("locations", len(locations)).
		Int("observations", len(observations)).
		Msg("assembled stock snapshot")
	return observations, nil
}

// BuildRecipeLines flattens the game database recipes into (output, input)
// lines. Lines whose output and input resolve to the same material are
// dropped.
func (c *Client) BuildRecipeLines(ctx context.Context) ([]entities.RecipeLine, error) {
	data, err := c.FetchGameData(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(data.Materials))
	for _, m := range data.Materials {
		names[m.ID] = m.Name
	}
	nameOf := func(id int64) string {
		if name, ok := names[id]; ok {
			return name
		}
		return strconv.FormatInt(id, 10)
	}

	var lines []entities.RecipeLine
	for _, recipe := range data.Recipes {
		for _, out := range recipe.Outputs {
			outName := nameOf(out.ID)
			for _, in := range recipe.Inputs {
				inName := nameOf(in.ID)
				if outName == inName {
					continue
				}
				lines = append(lines, entities.RecipeLine{
					Output:    outName,
					OutputQty: out.Amount,
					Input:     inName,
					InputQty:  in.Amount,
				})
			}
		}
	}

	c.log.Debug().Int("lines", len(lines)).Msg("built recipe lines")
	return lines, nil
}
