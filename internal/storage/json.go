package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"advlog/internal/domain"
)

// Save writes the execution context to the configured JSON file.
func (s *JSONStorage) Save(state *domain.ContextState) error {
	state.UpdatedAt = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}

	path := s.cfg.GetContextPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create context dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write context: %w", err)
	}
	return nil
}

// Load reads the stored execution context. A missing file yields an empty context.
func (s *JSONStorage) Load() (*domain.ContextState, error) {
	path := s.cfg.GetContextPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &domain.ContextState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read context file: %w", err)
	}
	var state domain.ContextState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}
	return &state, nil
}

// Clear removes the context file.
func (s *JSONStorage) Clear() error {
	err := os.Remove(s.cfg.GetContextPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove context: %w", err)
	}
	return nil
}
