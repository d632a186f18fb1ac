package storage

import (
	"advlog/internal/config"
	"advlog/internal/domain"
)

// Storage persists the CLI execution context between invocations
type Storage interface {
	Save(state *domain.ContextState) error
	Load() (*domain.ContextState, error)
	// Clear removes the stored context. A missing context is not an error.
	Clear() error
}

// JSONStorage stores the context in a JSON file under the configured context path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's context path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
