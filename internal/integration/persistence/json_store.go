// Package persistence implements repository interfaces for the store backends.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
	"github.com/quantum-finance/backend/internal/integration/persistence/model"
)

// JSONStore keeps the full document in memory and rewrites the backing file
// on every mutation. Writes go to a temp file in the same directory and are
// renamed into place, so a crash mid-write never corrupts the previous
// version. One store instance owns its file; the mutex serializes all access.
type JSONStore struct {
	path string

	mu           sync.RWMutex
	transactions []*entity.Transaction
	portfolio    *entity.Portfolio
	profile      *entity.UserProfile
}

// NewJSONStore loads the document at path, substituting an empty document
// when the file does not exist yet. Unreadable JSON is a hard error so a
// damaged file is never silently overwritten.
func NewJSONStore(path string) (*JSONStore, error) {
	store := &JSONStore{
		path:      path,
		portfolio: entity.EmptyPortfolio(),
		profile:   entity.DefaultUserProfile(),
	}

	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *JSONStore) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("data file not found, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	var doc model.FinanceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domainerror.NewCorruptDataFileError(s.path, err)
	}

	transactions := make([]*entity.Transaction, 0, len(doc.Transactions))
	for _, record := range doc.Transactions {
		transaction, err := record.ToEntity()
		if err != nil {
			return domainerror.NewCorruptDataFileError(s.path, err)
		}
		transactions = append(transactions, transaction)
	}
	s.transactions = transactions

	if doc.Portfolio != nil {
		s.portfolio = doc.Portfolio.ToEntity()
	}
	if doc.UserProfile != nil {
		s.profile = doc.UserProfile.ToEntity()
	}
	return nil
}

// save writes the current state atomically. Callers must hold the write lock.
func (s *JSONStore) save() error {
	records := make([]model.TransactionRecord, len(s.transactions))
	for i, t := range s.transactions {
		records[i] = model.TransactionRecordFromEntity(t)
	}

	doc := model.FinanceDocument{
		Version:      model.DocumentVersion,
		Transactions: records,
		Portfolio:    model.PortfolioRecordFromEntity(s.portfolio),
		UserProfile:  model.UserProfileRecordFromEntity(s.profile),
		LastUpdated:  time.Now().UTC().Format(time.RFC3339),
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Create appends a new transaction to the store.
func (s *JSONStore) Create(ctx context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.transactions {
		if existing.ID == transaction.ID {
			return domainerror.ErrDuplicateTransactionID
		}
	}

	s.transactions = append(s.transactions, transaction)
	if err := s.save(); err != nil {
		s.transactions = s.transactions[:len(s.transactions)-1]
		return err
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (s *JSONStore) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

// Update replaces the stored record with the given one, matched by ID.
func (s *JSONStore) Update(ctx context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.transactions {
		if existing.ID != transaction.ID {
			continue
		}
		s.transactions[i] = transaction
		if err := s.save(); err != nil {
			s.transactions[i] = existing
			return err
		}
		return nil
	}
	return domainerror.ErrTransactionNotFound
}

// Delete removes a transaction by its ID.
func (s *JSONStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.transactions {
		if existing.ID != id {
			continue
		}
		removed := s.transactions[i]
		s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
		if err := s.save(); err != nil {
			s.transactions = append(s.transactions, removed)
			return err
		}
		return nil
	}
	return domainerror.ErrTransactionNotFound
}

// List retrieves transactions matching the filter, newest first.
func (s *JSONStore) List(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]*entity.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if !matchesFilter(t, filter) {
			continue
		}
		clone := *t
		matches = append(matches, &clone)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Date.Equal(matches[j].Date) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].Date.After(matches[j].Date)
	})
	return matches, nil
}

// Snapshot retrieves a copy of every transaction.
func (s *JSONStore) Snapshot(ctx context.Context) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*entity.Transaction, len(s.transactions))
	for i, t := range s.transactions {
		clone := *t
		snapshot[i] = &clone
	}
	return snapshot, nil
}

// GetPortfolio retrieves the portfolio snapshot.
func (s *JSONStore) GetPortfolio(ctx context.Context) (*entity.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := *s.portfolio
	return &clone, nil
}

// GetUserProfile retrieves the user profile.
func (s *JSONStore) GetUserProfile(ctx context.Context) (*entity.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := *s.profile
	return &clone, nil
}

// UpdatePortfolio replaces the stored portfolio.
func (s *JSONStore) UpdatePortfolio(ctx context.Context, portfolio *entity.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.portfolio
	s.portfolio = portfolio
	if err := s.save(); err != nil {
		s.portfolio = previous
		return err
	}
	return nil
}

// UpdateUserProfile replaces the stored user profile.
func (s *JSONStore) UpdateUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.profile
	s.profile = profile
	if err := s.save(); err != nil {
		s.profile = previous
		return err
	}
	return nil
}

func matchesFilter(t *entity.Transaction, filter adapter.TransactionFilter) bool {
	if filter.Category != nil && t.Category != *filter.Category {
		return false
	}
	if filter.Type != nil && t.Type != *filter.Type {
		return false
	}
	if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
		return false
	}
	return true
}
