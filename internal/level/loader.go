package level

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

type catalogFile struct {
	Levels []Definition `yaml:"levels"`
}

// Load loads the level catalog.
// Search order: customPath -> ~/.harvest/levels.yaml -> ./levels.yaml ->
// embedded default. An explicit customPath that fails to read or parse is an
// error; the fallback locations are skipped silently when unusable.
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("level: failed to read catalog %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userCatalogPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := parse(data, userPath); err == nil {
				return c, nil
			}
		}
	}

	if data, err := os.ReadFile("levels.yaml"); err == nil {
		if c, err := parse(data, "levels.yaml"); err == nil {
			return c, nil
		}
	}

	return parse(defaultLevelsYAML, "embedded default")
}

func parse(data []byte, source string) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("level: failed to parse catalog %s: %w", source, err)
	}
	c, err := NewCatalog(f.Levels)
	if err != nil {
		return nil, fmt.Errorf("level: invalid catalog %s: %w", source, err)
	}
	return c, nil
}

func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".harvest", "levels.yaml")
}
