package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Parse decodes Cargo.toml contents into a CargoManifest.
func Parse(data []byte) (*CargoManifest, error) {
	var m CargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing Cargo.toml: %w", err)
	}
	return &m, nil
}

// ParseFile reads and decodes the manifest at path on fs.
func ParseFile(fs afero.Fs, path string) (*CargoManifest, error) {
	data, err := readFile(fs, path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// decodeRaw decodes TOML into a generic map for schema validation.
func decodeRaw(data []byte) (map[string]interface{}, error) {
	raw := make(map[string]interface{})
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	return raw, nil
}

// readFile reads the contents of a file at the given path.
func readFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
