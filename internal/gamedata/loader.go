package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// readJSON decodes the JSON document name from fsys into a T.
func readJSON[T any](fsys fs.FS, name string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return result, fmt.Errorf("read data file %s: %w", name, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", name, err)
	}
	return result, nil
}
