package service

import (
	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// Services groups the whole service layer into a single value that can be
// passed around the application. All services share the same
// [models.AppState] pointer and mutate it in place.
type Services struct {
	// Auth owns authentication and first-login registration rules.
	Auth *AuthService

	// Configuration owns the one-time base-field initialization.
	Configuration *ConfigurationService

	// Fields owns common-field and specific-field business rules.
	Fields *FieldService

	// Categories owns the category lifecycle.
	Categories *CategoryService
}

// NewServices wires every service to the given shared state. Each service
// receives its own child logger, so enriching one never leaks fields into the
// others.
func NewServices(state *models.AppState, log *logger.Logger) *Services {
	return &Services{
		Auth:          NewAuthService(state, log.GetChildLogger()),
		Configuration: NewConfigurationService(state, log.GetChildLogger()),
		Fields:        NewFieldService(state, log.GetChildLogger()),
		Categories:    NewCategoryService(state, log.GetChildLogger()),
	}
}
