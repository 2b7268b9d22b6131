// Package config reads run settings from a TOML file. Values from the file
// apply only where the command line did not set the same option.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors the long-form command-line options.
type Config struct {
	SeqDir  string `toml:"seq_dir,omitempty"`
	Fasta   string `toml:"fasta,omitempty"`
	Ranges  string `toml:"ranges,omitempty"`
	Mode    string `toml:"mode,omitempty"`
	Motif   string `toml:"motif,omitempty"`
	Param   int    `toml:"param"`
	Top     int    `toml:"top"`
	Buffer  int    `toml:"buffer"`
	Output  string `toml:"output,omitempty"`
	Header  bool   `toml:"header"`
	Sort    bool   `toml:"sort"`
	MaxOpen int    `toml:"max_open"`
	Quiet   bool   `toml:"quiet"`
}

// File is a decoded config plus the set of keys it actually defined.
type File struct {
	Config
	Path string
	meta toml.MetaData
}

// Has reports whether key appeared in the file.
func (f *File) Has(key string) bool {
	return f != nil && f.meta.IsDefined(key)
}

// Load decodes path. Unknown keys are an error.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh, path)
}

// Decode reads TOML from r; name is used in error messages.
func Decode(r io.Reader, name string) (*File, error) {
	f := &File{Path: name}
	meta, err := toml.NewDecoder(r).Decode(&f.Config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown key(s): %s", name, strings.Join(keys, ", "))
	}
	f.meta = meta
	return f, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
