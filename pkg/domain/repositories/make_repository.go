package repositories

import "github.com/tycoontools/gtplan/pkg/domain/entities"

// MakeRepository provides access to the material-to-base production
// assignments the planner treats as "makeable"
type MakeRepository interface {
	GetMakeRow(material string) (*entities.MakeRow, error)
	GetAllMakeRows() ([]*entities.MakeRow, error)
	SaveMakeRow(row *entities.MakeRow) error
	DeleteMakeRow(material string) error
	LoadMakeRows(rows []*entities.MakeRow) error
}
