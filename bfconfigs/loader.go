package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

// ConfigsLoader reads bf.cue and .bf.cue from the working directory, the
// user config dir and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := findConfigs(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigs(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
