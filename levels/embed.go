package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrSceneNotFound = errors.New("levels: scene not found")

// Level is a scene authored as rows of glyphs, top row first.
type Level struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`
}

// Names lists the embedded scenes in build order.
func Names() ([]string, error) {
	return NamesIn(LevelsFS)
}

// NamesIn lists the scenes in fsys in build order.
func NamesIn(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Index returns the build index of a scene by file name, with or without
// the .json extension.
func Index(name string) (int, error) {
	names, err := Names()
	if err != nil {
		return 0, err
	}
	want := name
	if path.Ext(want) != ".json" {
		want += ".json"
	}
	for i, n := range names {
		if n == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrSceneNotFound, name)
}

// Load returns the scene with the given build index.
func Load(index int) (*Level, error) {
	return LoadFrom(LevelsFS, index)
}

// LoadFrom returns the scene in fsys with the given build index.
func LoadFrom(fsys fs.FS, index int) (*Level, error) {
	names, err := NamesIn(fsys)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("%w: index %d", ErrSceneNotFound, index)
	}
	lvl, err := LoadLevelFromFS(fsys, names[index])
	if err != nil {
		return nil, err
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(names[index], ".json")
	}
	return lvl, nil
}

func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}
