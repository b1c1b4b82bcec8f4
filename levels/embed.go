package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/milk9111/gridedit/level"
)

//go:embed *.txt
var LevelsFS embed.FS

// Names lists the bundled level files.
func Names() ([]string, error) {
	return fs.Glob(LevelsFS, "*.txt")
}

// LoadRows reads a bundled level as text rows.
func LoadRows(name string) ([]string, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return level.SplitRows(string(data)), nil
}
