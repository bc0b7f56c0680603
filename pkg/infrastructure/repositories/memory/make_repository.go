package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
	"github.com/tycoontools/gtplan/pkg/domain/repositories"
)

// MakeRepository provides in-memory storage of production assignments
type MakeRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.MakeRow
}

// NewMakeRepository creates a new in-memory make repository
func NewMakeRepository(expectedRows int) *MakeRepository {
	return &MakeRepository{
		rows: make(map[string]entities.MakeRow, expectedRows),
	}
}

// Verify interface compliance
var _ repositories.MakeRepository = (*MakeRepository)(nil)

// LoadMakeRows loads production assignments into the repository
func (r *MakeRepository) LoadMakeRows(rows []*entities.MakeRow) error {
	for _, row := range rows {
		if err := r.SaveMakeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// SaveMakeRow inserts or replaces the assignment for a material
func (r *MakeRepository) SaveMakeRow(row *entities.MakeRow) error {
	if row == nil {
		return fmt.Errorf("cannot save nil make row")
	}
	if row.Material == "" {
		return fmt.Errorf("cannot save make row with empty material")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[row.Material] = *row
	return nil
}

// GetMakeRow returns the assignment for a material
func (r *MakeRepository) GetMakeRow(material string) (*entities.MakeRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, exists := r.rows[material]
	if !exists {
		return nil, fmt.Errorf("make row not found: %s", material)
	}
	return &row, nil
}

// GetAllMakeRows returns all assignments sorted by material name
func (r *MakeRepository) GetAllMakeRows() ([]*entities.MakeRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	materials := make([]string, 0, len(r.rows))
	for material := range r.rows {
		materials = append(materials, material)
	}
	sort.Strings(materials)

	rows := make([]*entities.MakeRow, 0, len(materials))
	for _, material := range materials {
		row := r.rows[material]
		rows = append(rows, &row)
	}
	return rows, nil
}

// DeleteMakeRow removes the assignment for a material
func (r *MakeRepository) DeleteMakeRow(material string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[material]; !exists {
		return fmt.Errorf("make row not found: %s", material)
	}
	delete(r.rows, material)
	return nil
}
