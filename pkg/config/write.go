package config

import (
	"os"
	"path/filepath"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	goyaml "gopkg.in/yaml.v3"

	"github.com/arthur-debert/junct/pkg/errors"
)

// WriteDefault writes the built-in defaults to path, as YAML when the
// extension says so and TOML otherwise. Parent directories are created;
// an existing file is not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfigWrite, "%s already exists", path)
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = goyaml.Marshal(Default())
	default:
		data, err = gotoml.Marshal(Default())
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "marshaling default configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "creating %s", filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "writing %s", path)
	}

	return nil
}
