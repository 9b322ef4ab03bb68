package service

import (
	"fmt"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// baseFieldSpecs is the fixed catalog of base fields every category shares.
// Names and types are part of the product contract and never change at
// runtime.
var baseFieldSpecs = []struct {
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

// ConfigurationService owns the one-time initialization of the base-field
// catalog performed during the very first session.
type ConfigurationService struct {
	state *models.AppState
	log   *logger.Logger
}

// NewConfigurationService creates a ConfigurationService over the shared state.
func NewConfigurationService(state *models.AppState, log *logger.Logger) *ConfigurationService {
	return &ConfigurationService{state: state, log: log}
}

// AreBaseFieldsInitialized reports whether the base-field catalog has already
// been populated.
func (s *ConfigurationService) AreBaseFieldsInitialized() bool {
	return s.state.BaseFieldsLocked
}

// BaseFields returns the base-field catalog in its fixed order.
func (s *ConfigurationService) BaseFields() []*models.BaseField {
	return s.state.BaseFields
}

// InitBaseFields populates the base-field catalog with the fixed set of
// mandatory fields and locks it. The operation runs exactly once per
// application lifetime; a repeated call fails with
// [ErrBaseFieldsInitialized] and changes nothing.
func (s *ConfigurationService) InitBaseFields() error {
	if s.state.BaseFieldsLocked {
		return ErrBaseFieldsInitialized
	}

	fields := make([]*models.BaseField, 0, len(baseFieldSpecs))
	for _, spec := range baseFieldSpecs {
		f, err := models.NewBaseField(spec.name, spec.typ)
		if err != nil {
			return fmt.Errorf("init base field %q: %w", spec.name, err)
		}
		fields = append(fields, f)
	}

	s.state.BaseFields = fields
	s.state.BaseFieldsLocked = true

	s.log.Debug().Int("count", len(fields)).Msg("base fields initialized")
	return nil
}
