package bindings

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileSchema is the TOML shape of a bindings file:
//
//	[[bind]]
//	input = "KeyW"
//	control = "move-up"
//	device = "keyboard"
type fileSchema struct {
	Bind []Entry `toml:"bind"`
}

// Load reads and parses a TOML bindings file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader parses TOML bindings from an io.Reader.
func LoadReader(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return parse("<reader>", data)
}

// Parse parses TOML bindings data.
func Parse(data []byte) ([]Entry, error) {
	return parse("<data>", data)
}

func parse(source string, data []byte) ([]Entry, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	if err := validate(file.Bind); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return file.Bind, nil
}

// ParseError represents an error while parsing a bindings file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
