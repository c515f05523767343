package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadJSON decodes and validates a JSON hand record. Unknown fields are
// rejected.
func LoadJSON(r io.Reader) (*Hand, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var rec HandRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding hand record: %w", err)
	}
	return rec.Validate()
}

// LoadTOML decodes and validates a TOML hand record.
func LoadTOML(r io.Reader) (*Hand, error) {
	var rec HandRecord
	meta, err := toml.NewDecoder(r).Decode(&rec)
	if err != nil {
		return nil, fmt.Errorf("decoding hand record: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown field %q in hand record", undec[0].String())
	}
	return rec.Validate()
}

// LoadFile loads a hand record, picking the codec from the file extension
// (.json, .toml).
func LoadFile(path string) (*Hand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(f)
	case ".toml":
		return LoadTOML(f)
	default:
		return nil, fmt.Errorf("unsupported hand record format %q", filepath.Ext(path))
	}
}
