package fact

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no fact matches the requested id or kind
var ErrNotFound = errors.New("fact not found")

// Store interface defines methods for fact persistence
type Store interface {
	Create(ctx context.Context, kind, text string) (Fact, error)
	Get(ctx context.Context, id uint) (Fact, error)
	UpdateText(ctx context.Context, id uint, text string) error
	Delete(ctx context.Context, id uint) error
	ListByKind(ctx context.Context, kind string) ([]Fact, error)
	Random(ctx context.Context, kind string) (Fact, error)
	CountByKind(ctx context.Context, kind string) (int64, error)
}

// GormStore handles fact persistence using GORM
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a new fact store on an open GORM connection
func NewStore(db *gorm.DB) (*GormStore, error) {
	// Auto-migrate tables
	if err := db.AutoMigrate(&Fact{}); err != nil {
		return nil, fmt.Errorf("failed to migrate facts table: %w", err)
	}

	return &GormStore{db: db}, nil
}

// Create inserts a new fact row
func (s *GormStore) Create(ctx context.Context, kind, text string) (Fact, error) {
	f := Fact{Kind: kind, Text: text}

	result := s.db.WithContext(ctx).Create(&f)
	if result.Error != nil {
		return Fact{}, fmt.Errorf("failed to create fact: %w", result.Error)
	}

	return f, nil
}

// Get retrieves a fact by id
func (s *GormStore) Get(ctx context.Context, id uint) (Fact, error) {
	var f Fact
	result := s.db.WithContext(ctx).First(&f, id)

	if result.Error != nil {
		// Handle not found error
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Fact{}, ErrNotFound
		}
		// Handle generic errors
		return Fact{}, fmt.Errorf("failed to get fact: %w", result.Error)
	}

	return f, nil
}

// UpdateText overwrites the text of an existing fact. Kind and id are never changed.
func (s *GormStore) UpdateText(ctx context.Context, id uint, text string) error {
	result := s.db.WithContext(ctx).Model(&Fact{}).Where("id = ?", id).Update("text", text)
	if result.Error != nil {
		return fmt.Errorf("failed to update fact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a fact by id
func (s *GormStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Fact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete fact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListByKind retrieves all facts of one kind in ascending id order
func (s *GormStore) ListByKind(ctx context.Context, kind string) ([]Fact, error) {
	var facts []Fact
	result := s.db.WithContext(ctx).Where("kind = ?", kind).Order("id ASC").Find(&facts)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to list facts: %w", result.Error)
	}

	return facts, nil
}

// Random retrieves one fact of the given kind, uniformly at random over all
// current rows of that kind
func (s *GormStore) Random(ctx context.Context, kind string) (Fact, error) {
	order := "RANDOM()"
	if s.db.Dialector.Name() == "mysql" {
		order = "RAND()"
	}

	var f Fact
	result := s.db.WithContext(ctx).Where("kind = ?", kind).Order(order).First(&f)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Fact{}, ErrNotFound
		}
		return Fact{}, fmt.Errorf("failed to pick random fact: %w", result.Error)
	}

	return f, nil
}

// CountByKind returns how many rows of one kind exist
func (s *GormStore) CountByKind(ctx context.Context, kind string) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&Fact{}).Where("kind = ?", kind).Count(&count)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to count facts: %w", result.Error)
	}

	return count, nil
}
