// Package signature provides the ordered registry of named error signatures
// used to classify log lines. Registry order encodes precedence among
// overlapping patterns: the first matching signature owns the line.
package signature

import (
	"fmt"
	"regexp"
)

// Definition is a single uncompiled signature: a unique name and a regular
// expression source. Matching is always case-insensitive.
type Definition struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Signature is a compiled signature held by a Registry.
type Signature struct {
	Name string

	pattern string
	re      *regexp.Regexp
}

// Match reports whether the signature matches the line.
func (s *Signature) Match(line string) bool {
	return s.re.MatchString(line)
}

// Pattern returns the signature's pattern source as authored.
func (s *Signature) Pattern() string {
	return s.pattern
}

// Registry holds an ordered, immutable set of compiled signatures.
type Registry struct {
	signatures []*Signature
}

// NewRegistry compiles the given definitions in order. A pattern that fails
// to compile is a configuration bug, not a runtime condition: the whole
// construction fails and nothing should be scanned.
func NewRegistry(defs []Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyRegistry
	}

	seen := make(map[string]struct{}, len(defs))
	signatures := make([]*Signature, 0, len(defs))

	for _, def := range defs {
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}
		seen[def.Name] = struct{}{}

		re, err := regexp.Compile("(?i)" + def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("signature %q: invalid pattern: %w", def.Name, err)
		}
		signatures = append(signatures, &Signature{Name: def.Name, pattern: def.Pattern, re: re})
	}

	return &Registry{signatures: signatures}, nil
}

// Match returns the name of the first signature (in registry order) that
// matches the line. Later signatures are not tested once one matches.
func (r *Registry) Match(line string) (string, bool) {
	for _, sig := range r.signatures {
		if sig.Match(line) {
			return sig.Name, true
		}
	}
	return "", false
}

// Signatures returns the compiled signatures in registry order.
func (r *Registry) Signatures() []*Signature {
	return r.signatures
}

// Len returns the number of signatures in the registry.
func (r *Registry) Len() int {
	return len(r.signatures)
}
