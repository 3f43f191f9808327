// Package acronyms loads acronym tables for camel conversion from command
// line pairs, environment values and YAML/JSON files.
package acronyms

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/keyerrors"
	"go.yaml.in/yaml/v4"
)

// ParsePair parses a single "word=Replacement" pair.
func ParsePair(pair string) (word, replacement string, err error) {
	word, replacement, found := strings.Cut(pair, "=")
	if !found || word == "" {
		return "", "", &keyerrors.ConfigError{
			Option:  "acronym",
			Value:   pair,
			Message: "expected word=Replacement",
		}
	}
	return word, replacement, nil
}

// ParsePairs builds a table from "word=Replacement" pairs.
// Later pairs override earlier ones for the same word.
func ParsePairs(pairs []string) (camel.Acronyms, error) {
	table := make(camel.Acronyms, len(pairs))
	for _, pair := range pairs {
		word, replacement, err := ParsePair(pair)
		if err != nil {
			return nil, err
		}
		table[word] = replacement
	}
	return table, nil
}

// ParseList parses a comma-separated list of pairs, e.g. "id=ID,url=URL".
// Blank items are skipped.
func ParseList(list string) (camel.Acronyms, error) {
	var pairs []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			pairs = append(pairs, item)
		}
	}
	return ParsePairs(pairs)
}

// Parse decodes a YAML or JSON mapping of words to replacements.
// name identifies the source in errors.
func Parse(name string, data []byte) (camel.Acronyms, error) {
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &keyerrors.ParseError{
			Path:    name,
			Message: "acronym table must map words to strings",
			Cause:   err,
		}
	}
	if table == nil {
		table = map[string]string{}
	}
	return camel.Acronyms(table), nil
}

// Load reads an acronym table from a YAML or JSON file.
func Load(path string) (camel.Acronyms, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("acronyms: reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// Merge returns a new table holding every entry of tables, with later
// tables overriding earlier ones.
func Merge(tables ...camel.Acronyms) camel.Acronyms {
	n := 0
	for _, t := range tables {
		n += len(t)
	}
	out := make(camel.Acronyms, n)
	for _, t := range tables {
		for word, replacement := range t {
			out[word] = replacement
		}
	}
	return out
}
