package config

import (
	_ "embed"

	"github.com/arthur-debert/catcher/pkg/errors"
)

//go:embed catcher.toml
var defaultConfig []byte

// rawBytesProvider adapts an embedded byte slice to koanf's Provider interface
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
