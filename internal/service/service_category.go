package service

import (
	"fmt"
	"strings"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// CategoryService owns the category lifecycle: creation with system-wide
// case-insensitive name uniqueness, lookup and removal. Removing a category
// also discards its specific fields, as they have no existence outside it.
type CategoryService struct {
	state *models.AppState
	log   *logger.Logger
}

// NewCategoryService creates a CategoryService over the shared state.
func NewCategoryService(state *models.AppState, log *logger.Logger) *CategoryService {
	return &CategoryService{state: state, log: log}
}

// Categories returns the categories in insertion order.
func (s *CategoryService) Categories() []*models.Category {
	return s.state.Categories
}

// CategoryExists reports whether a category with the given case-insensitive
// name exists.
func (s *CategoryService) CategoryExists(name string) bool {
	return s.findCategory(name) >= 0
}

// GetCategory returns the category with the given case-insensitive name, or
// [ErrCategoryNotFound].
func (s *CategoryService) GetCategory(name string) (*models.Category, error) {
	i := s.findCategory(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, strings.TrimSpace(name))
	}
	return s.state.Categories[i], nil
}

// AddCategory creates an empty category and appends it to the taxonomy. A
// case-insensitive name collision fails with [ErrDuplicateCategory] and
// leaves the taxonomy unchanged.
func (s *CategoryService) AddCategory(name string) (*models.Category, error) {
	c, err := models.NewCategory(name)
	if err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	if s.CategoryExists(c.Name()) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name())
	}

	s.state.Categories = append(s.state.Categories, c)

	s.log.Debug().Str("category", c.Name()).Msg("category added")
	return c, nil
}

// RemoveCategory deletes the category with the given case-insensitive name
// together with all of its specific fields, or fails with
// [ErrCategoryNotFound].
func (s *CategoryService) RemoveCategory(name string) error {
	i := s.findCategory(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, strings.TrimSpace(name))
	}

	removed := s.state.Categories[i].Name()
	s.state.Categories = append(s.state.Categories[:i], s.state.Categories[i+1:]...)

	s.log.Debug().Str("category", removed).Msg("category removed")
	return nil
}

func (s *CategoryService) findCategory(name string) int {
	name = strings.TrimSpace(name)
	for i, c := range s.state.Categories {
		if strings.EqualFold(c.Name(), name) {
			return i
		}
	}
	return -1
}
