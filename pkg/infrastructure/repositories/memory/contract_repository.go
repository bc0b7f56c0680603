package memory

import (
	"fmt"
	"sync"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
	"github.com/tycoontools/gtplan/pkg/domain/repositories"
)

// ContractRepository provides in-memory contract storage
type ContractRepository struct {
	mu        sync.RWMutex
	contracts []entities.Contract
	index     map[string]int
}

// NewContractRepository creates a new in-memory contract repository
func NewContractRepository(expectedContracts int) *ContractRepository {
	return &ContractRepository{
		contracts: make([]entities.Contract, 0, expectedContracts),
		index:     make(map[string]int, expectedContracts),
	}
}

// Verify interface compliance
var _ repositories.ContractRepository = (*ContractRepository)(nil)

// LoadContracts loads contracts into the repository
func (r *ContractRepository) LoadContracts(contracts []*entities.Contract) error {
	for _, contract := range contracts {
		if err := r.SaveContract(contract); err != nil {
			return err
		}
	}
	return nil
}

// SaveContract inserts or updates a contract by id
func (r *ContractRepository) SaveContract(contract *entities.Contract) error {
	if contract == nil {
		return fmt.Errorf("cannot save nil contract")
	}
	if contract.ID == "" {
		return fmt.Errorf("cannot save contract with empty id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, exists := r.index[contract.ID]; exists {
		r.contracts[i] = *contract
		return nil
	}
	r.index[contract.ID] = len(r.contracts)
	r.contracts = append(r.contracts, *contract)
	return nil
}

// GetContract returns the contract with the given id
func (r *ContractRepository) GetContract(id string) (*entities.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return nil, fmt.Errorf("contract not found: %s", id)
	}
	contract := r.contracts[i]
	return &contract, nil
}

// GetAllContracts returns all contracts in insertion order
func (r *ContractRepository) GetAllContracts() ([]*entities.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contracts := make([]*entities.Contract, 0, len(r.contracts))
	for i := range r.contracts {
		contract := r.contracts[i]
		contracts = append(contracts, &contract)
	}
	return contracts, nil
}

// DeleteContract removes the contract with the given id
func (r *ContractRepository) DeleteContract(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if !exists {
		return fmt.Errorf("contract not found: %s", id)
	}
	r.contracts = append(r.contracts[:i], r.contracts[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.contracts); j++ {
		r.index[r.contracts[j].ID] = j
	}
	return nil
}
