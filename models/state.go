package models

// Default credentials accepted only on the very first launch, before the
// configurator chooses personal ones.
const (
	DefaultUsername = "admin"
	DefaultPassword = "adminYA"
)

// AppState is the root container aggregating everything the application
// manages: configurators, base fields, common fields, categories and the
// base-field initialization lock.
//
// Exactly one instance exists per process. The entry point creates it (or
// rebuilds it from a snapshot) and hands the same pointer to every service;
// services mutate it in place. There is no package-level singleton.
type AppState struct {
	Configurators    []*Configurator
	BaseFields       []*BaseField
	CommonFields     []*CommonField
	Categories       []*Category
	BaseFieldsLocked bool
}

// NewAppState returns a fresh, empty state as seen on the very first launch.
func NewAppState() *AppState {
	return &AppState{}
}
