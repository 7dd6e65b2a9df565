package highscore

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMedium stores the packed leaderboard in a single small file, standing
// in for the device's non-volatile memory.
type FileMedium struct {
	path string
}

// NewFileMedium resolves the storage path, expanding a leading ~ to the
// user's home directory.
func NewFileMedium(path string) (*FileMedium, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileMedium{path: path}, nil
}

// Read returns the stored bytes.
func (m *FileMedium) Read() ([]byte, error) {
	return os.ReadFile(m.path)
}

// Write replaces the stored bytes, creating parent directories as needed.
func (m *FileMedium) Write(data []byte) error {
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", m.path, err)
	}
	return nil
}
