package portfolio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads a snapshot from a YAML profile file.
func LoadProfile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return &snap, nil
}

// SaveProfile writes a snapshot to a YAML profile file so it can be
// re-generated later without rerunning the wizard.
func SaveProfile(snap *Snapshot, path string) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}
