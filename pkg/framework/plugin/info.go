package plugin

import (
	"errors"
	"fmt"
)

// Info contains processor metadata
type Info struct {
	ID       string // Unique identifier (e.g., "com.example.noisegate")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Category (e.g., "Fx", "MIDI")
}

// Validate reports missing identifying fields.
func (i Info) Validate() error {
	var errs []error
	if i.ID == "" {
		errs = append(errs, errors.New("missing ID"))
	}
	if i.Name == "" {
		errs = append(errs, errors.New("missing name"))
	}
	return errors.Join(errs...)
}

func (i Info) String() string {
	if i.Version == "" {
		return i.Name
	}
	return fmt.Sprintf("%s %s", i.Name, i.Version)
}
