package camel

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Acronyms maps exact word fragments to the literal text that replaces them,
// e.g. {"id": "ID", "url": "URL"}. Lookups are case-sensitive and
// replacements are used verbatim. A nil table is empty.
type Acronyms map[string]string

// Casers keep transformation state and must not be shared between goroutines.
var titleCaserPool = sync.Pool{
	New: func() any {
		c := cases.Title(language.Und, cases.NoLower)
		return &c
	},
}

// capitalize returns the acronym override for fragment, or fragment with its
// first rune title-cased. The rest of the fragment is left as-is.
func capitalize(fragment string, acronyms Acronyms) string {
	if override, ok := acronyms[fragment]; ok {
		return override
	}
	if fragment == "" {
		return ""
	}

	c := fragment[0]
	if c < utf8.RuneSelf {
		if 'a' <= c && c <= 'z' {
			return string(c-'a'+'A') + fragment[1:]
		}
		return fragment
	}

	r, size := utf8.DecodeRuneInString(fragment)
	if r == utf8.RuneError {
		return fragment
	}

	caser := titleCaserPool.Get().(*cases.Caser)
	head := caser.String(fragment[:size])
	titleCaserPool.Put(caser)

	return head + fragment[size:]
}
