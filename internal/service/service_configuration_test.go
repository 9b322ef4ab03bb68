package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

func TestConfigurationService_InitBaseFields(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)
	require.False(t, svc.Configuration.AreBaseFieldsInitialized())

	// Act
	err := svc.Configuration.InitBaseFields()

	// Assert
	require.NoError(t, err)
	assert.True(t, svc.Configuration.AreBaseFieldsInitialized())
	require.Len(t, state.BaseFields, 8)

	want := []struct {
		name string
		typ  models.FieldType
	}{
		{"Title", models.FieldTypeString},
		{"ParticipantCount", models.FieldTypeInteger},
		{"RegistrationDeadline", models.FieldTypeDate},
		{"Location", models.FieldTypeString},
		{"Date", models.FieldTypeDate},
		{"Time", models.FieldTypeTime},
		{"IndividualFee", models.FieldTypeDecimal},
		{"FinalDate", models.FieldTypeDate},
	}
	for i, w := range want {
		f := state.BaseFields[i]
		assert.Equal(t, w.name, f.Name())
		assert.Equal(t, w.typ, f.Type())
		assert.True(t, f.Mandatory(), "base field %q must be mandatory", w.name)
	}
}

func TestConfigurationService_InitBaseFields_OnlyOnce(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)
	require.NoError(t, svc.Configuration.InitBaseFields())
	before := svc.Configuration.BaseFields()

	// Act
	err := svc.Configuration.InitBaseFields()

	// Assert
	assert.ErrorIs(t, err, ErrBaseFieldsInitialized)
	assert.Equal(t, before, state.BaseFields, "a rejected re-initialization must not touch the catalog")
}

func TestConfigurationService_BaseFieldsAreImmutable(t *testing.T) {
	svc, _ := newTestServices(t)
	require.NoError(t, svc.Configuration.InitBaseFields())

	for _, f := range svc.Configuration.BaseFields() {
		err := f.SetMandatory(false)
		assert.ErrorIs(t, err, models.ErrBaseFieldImmutable)
		assert.True(t, f.Mandatory())
	}
}
