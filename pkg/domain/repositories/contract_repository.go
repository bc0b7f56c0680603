package repositories

import "github.com/tycoontools/gtplan/pkg/domain/entities"

// ContractRepository provides access to stored delivery contracts
type ContractRepository interface {
	GetContract(id string) (*entities.Contract, error)
	GetAllContracts() ([]*entities.Contract, error)
	SaveContract(contract *entities.Contract) error
	DeleteContract(id string) error
	LoadContracts(contracts []*entities.Contract) error
}
