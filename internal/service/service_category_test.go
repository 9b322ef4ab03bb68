package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

func TestCategoryService_AddCategory(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)

	// Act
	cat, err := svc.Categories.AddCategory("  Tournament  ")

	// Assert
	require.NoError(t, err)
	require.Len(t, state.Categories, 1)
	assert.Equal(t, "Tournament", cat.Name())
	assert.True(t, svc.Categories.CategoryExists("tournament"))
}

func TestCategoryService_AddCategory_Duplicate(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)
	_, err := svc.Categories.AddCategory("Tournament")
	require.NoError(t, err)

	// Act
	cat, err := svc.Categories.AddCategory("TOURNAMENT")

	// Assert
	assert.ErrorIs(t, err, ErrDuplicateCategory)
	assert.Nil(t, cat)
	assert.Len(t, state.Categories, 1)
}

func TestCategoryService_AddCategory_EmptyName(t *testing.T) {
	svc, state := newTestServices(t)

	_, err := svc.Categories.AddCategory("   ")

	assert.ErrorIs(t, err, models.ErrEmptyName)
	assert.Empty(t, state.Categories)
}

func TestCategoryService_GetCategory(t *testing.T) {
	svc, _ := newTestServices(t)
	cat, err := svc.Categories.AddCategory("Tournament")
	require.NoError(t, err)

	got, err := svc.Categories.GetCategory(" tournament ")
	require.NoError(t, err)
	assert.Same(t, cat, got)

	_, err = svc.Categories.GetCategory("Workshop")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_RemoveCategory(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)
	cat, err := svc.Categories.AddCategory("Tournament")
	require.NoError(t, err)
	_, err = svc.Categories.AddCategory("Workshop")
	require.NoError(t, err)
	require.NoError(t, svc.Fields.AddSpecificField(cat, "TeamSize", models.FieldTypeInteger, true))

	// Act: removal discards the category and its specific fields in one step.
	err = svc.Categories.RemoveCategory("TOURNAMENT")

	// Assert
	require.NoError(t, err)
	require.Len(t, state.Categories, 1)
	assert.Equal(t, "Workshop", state.Categories[0].Name())

	assert.ErrorIs(t, svc.Categories.RemoveCategory("Tournament"), ErrCategoryNotFound)
}
