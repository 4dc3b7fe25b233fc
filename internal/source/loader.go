package source

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Unit names one compilation input. Input may be nil, in which case the
// reader asks its Loader to open Name.
type Unit struct {
	Name  string
	Input io.Reader
}

// NewUnit builds a unit from an explicit reader. Both arguments are required.
func NewUnit(name string, input io.Reader) Unit {
	if name == "" {
		panic("source: unit name must not be empty")
	}
	if input == nil {
		panic("source: unit input must not be nil")
	}
	return Unit{Name: name, Input: input}
}

// NewNamedUnit builds a unit that is opened by the Loader at load time.
func NewNamedUnit(name string) Unit {
	if name == "" {
		panic("source: unit name must not be empty")
	}
	return Unit{Name: name}
}

// Loader opens a source buffer by name.
type Loader interface {
	Load(name string) (io.ReadCloser, error)
}

// FileLoader opens source names as paths on the local filesystem.
type FileLoader struct{}

func (FileLoader) Load(name string) (io.ReadCloser, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load source %q: %w", name, err)
	}
	return f, nil
}

// decode converts raw input bytes into the character sequence the reader
// iterates. A UTF-16 byte-order mark switches decoding to the indicated
// endianness; a UTF-8 BOM is stripped. Everything else is taken as UTF-8.
func decode(raw []byte) ([]rune, error) {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	return []rune(string(out)), nil
}
