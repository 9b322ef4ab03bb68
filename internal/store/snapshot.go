package store

import (
	"fmt"
	"time"

	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// snapshotVersion is the current on-disk snapshot format version. Bump it
// whenever a record shape changes incompatibly.
const snapshotVersion = 1

// snapshot is the serialized form of the whole application state. Both
// backends write and read the same records; insertion order of every slice is
// preserved across a save/load round trip.
type snapshot struct {
	Version          int                  `json:"version"`
	SavedAt          time.Time            `json:"saved_at"`
	Configurators    []configuratorRecord `json:"configurators"`
	BaseFields       []fieldRecord        `json:"base_fields"`
	CommonFields     []fieldRecord        `json:"common_fields"`
	Categories       []categoryRecord     `json:"categories"`
	BaseFieldsLocked bool                 `json:"base_fields_locked"`
}

type configuratorRecord struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FirstLogin bool   `json:"first_login"`
}

type fieldRecord struct {
	Name      string           `json:"name"`
	Type      models.FieldType `json:"type"`
	Mandatory bool             `json:"mandatory"`
}

type categoryRecord struct {
	Name           string        `json:"name"`
	SpecificFields []fieldRecord `json:"specific_fields"`
}

// snapshotFromState flattens the state into serializable records.
func snapshotFromState(state *models.AppState) snapshot {
	s := snapshot{
		Version:          snapshotVersion,
		SavedAt:          time.Now().UTC(),
		BaseFieldsLocked: state.BaseFieldsLocked,
	}

	for _, c := range state.Configurators {
		s.Configurators = append(s.Configurators, configuratorRecord{
			Username:   c.Username(),
			Password:   c.Password(),
			FirstLogin: c.FirstLogin(),
		})
	}
	for _, f := range state.BaseFields {
		s.BaseFields = append(s.BaseFields, fieldRecord{Name: f.Name(), Type: f.Type(), Mandatory: f.Mandatory()})
	}
	for _, f := range state.CommonFields {
		s.CommonFields = append(s.CommonFields, fieldRecord{Name: f.Name(), Type: f.Type(), Mandatory: f.Mandatory()})
	}
	for _, c := range state.Categories {
		rec := categoryRecord{Name: c.Name()}
		for _, f := range c.SpecificFields() {
			rec.SpecificFields = append(rec.SpecificFields, fieldRecord{Name: f.Name(), Type: f.Type(), Mandatory: f.Mandatory()})
		}
		s.Categories = append(s.Categories, rec)
	}

	return s
}

// toState rebuilds a live state from snapshot records, re-validating every
// model invariant on the way. Any violation means the snapshot was tampered
// with or produced by a buggy writer, and surfaces as [ErrCorruptSnapshot].
func (s snapshot) toState() (*models.AppState, error) {
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotVersion, s.Version, snapshotVersion)
	}

	state := models.NewAppState()
	state.BaseFieldsLocked = s.BaseFieldsLocked

	for _, rec := range s.Configurators {
		c, err := models.RestoreConfigurator(rec.Username, rec.Password, rec.FirstLogin)
		if err != nil {
			return nil, fmt.Errorf("%w: configurator %q: %w", ErrCorruptSnapshot, rec.Username, err)
		}
		state.Configurators = append(state.Configurators, c)
	}

	for _, rec := range s.BaseFields {
		f, err := models.NewBaseField(rec.Name, rec.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: base field %q: %w", ErrCorruptSnapshot, rec.Name, err)
		}
		state.BaseFields = append(state.BaseFields, f)
	}

	for _, rec := range s.CommonFields {
		f, err := models.NewCommonField(rec.Name, rec.Type, rec.Mandatory)
		if err != nil {
			return nil, fmt.Errorf("%w: common field %q: %w", ErrCorruptSnapshot, rec.Name, err)
		}
		state.CommonFields = append(state.CommonFields, f)
	}

	for _, rec := range s.Categories {
		cat, err := models.NewCategory(rec.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: category %q: %w", ErrCorruptSnapshot, rec.Name, err)
		}
		for _, fr := range rec.SpecificFields {
			f, err := models.NewSpecificField(fr.Name, fr.Type, fr.Mandatory)
			if err != nil {
				return nil, fmt.Errorf("%w: specific field %q in category %q: %w", ErrCorruptSnapshot, fr.Name, rec.Name, err)
			}
			if !cat.AddSpecificField(f) {
				return nil, fmt.Errorf("%w: duplicate specific field %q in category %q", ErrCorruptSnapshot, fr.Name, rec.Name)
			}
		}
		state.Categories = append(state.Categories, cat)
	}

	return state, nil
}
