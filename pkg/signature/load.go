package signature

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML layout of a signature set:
//
//	signatures:
//	  - name: NetworkError
//	    pattern: 'nsUtils.*err:\s*5'
//
// List order in the file is authoritative and replaces the built-in set.
type File struct {
	Signatures []Definition `yaml:"signatures"`
}

// LoadFile reads a YAML signature file and compiles it into a Registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("signature: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("signature: parse %s: %w", path, err)
	}

	reg, err := NewRegistry(f.Signatures)
	if err != nil {
		return nil, fmt.Errorf("signature: %s: %w", path, err)
	}
	return reg, nil
}
