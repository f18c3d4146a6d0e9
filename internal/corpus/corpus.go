// Package corpus provides the named word lists typing tests draw from.
package corpus

import (
	"bytes"
	"embed"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/gideonmt/remytype/internal/generator"
	"github.com/gideonmt/remytype/internal/model"
	"github.com/gideonmt/remytype/internal/wordlist"
)

// FallbackText is returned when a language is unknown.
const FallbackText = "the quick brown fox jumps over the lazy dog"

// DefaultLanguage is the first built-in list.
const DefaultLanguage = "english_200"

// maxWPM bounds how many words a Time-mode test needs.
const maxWPM = 200

//go:embed data/*.txt
var builtinFS embed.FS

var builtinNames = []string{"english_200", "english_1k"}

// Builtin returns the embedded word lists in display order.
func Builtin() []wordlist.List {
	lists := make([]wordlist.List, 0, len(builtinNames))
	for _, name := range builtinNames {
		data, err := builtinFS.ReadFile("data/" + name + wordlist.Ext)
		if err != nil {
			panic(fmt.Sprintf("corpus: missing embedded list %s: %v", name, err))
		}
		words, err := wordlist.ParseWords(bytes.NewReader(data))
		if err != nil {
			panic(fmt.Sprintf("corpus: invalid embedded list %s: %v", name, err))
		}
		lists = append(lists, wordlist.List{Name: name, Words: words})
	}
	return lists
}

// Provider is a closed, load-once set of named word lists.
type Provider struct {
	gen   *generator.Generator
	opts  model.TextOptions
	lists []wordlist.List
	index map[string]int
}

// New builds a provider over lists. The first list with a given name wins.
func New(gen *generator.Generator, opts model.TextOptions, lists ...wordlist.List) *Provider {
	p := &Provider{
		gen:   gen,
		opts:  opts,
		index: make(map[string]int, len(lists)),
	}
	for _, l := range lists {
		if _, dup := p.index[l.Name]; dup {
			log.Printf("corpus: ignoring duplicate word list %q", l.Name)
			continue
		}
		if len(l.Words) == 0 {
			continue
		}
		p.index[l.Name] = len(p.lists)
		p.lists = append(p.lists, l)
	}
	return p
}

// Names lists the known corpus identifiers in display order.
func (p *Provider) Names() []string {
	names := make([]string, len(p.lists))
	for i, l := range p.lists {
		names[i] = l.Name
	}
	return names
}

// Has reports whether lang is a known corpus identifier.
func (p *Provider) Has(lang string) bool {
	_, ok := p.index[lang]
	return ok
}

// Size returns the number of words in the named list, or 0.
func (p *Provider) Size(lang string) int {
	i, ok := p.index[lang]
	if !ok {
		return 0
	}
	return len(p.lists[i].Words)
}

// Generate returns count space-joined words sampled from lang. Unknown
// languages and non-positive counts yield FallbackText.
func (p *Provider) Generate(lang string, count int) string {
	i, ok := p.index[lang]
	if !ok || count <= 0 {
		if !ok {
			log.Printf("corpus: unknown language %q, using fallback text", lang)
		}
		return FallbackText
	}
	words := p.gen.Generate(p.lists[i].Words, count, p.opts)
	if len(words) == 0 {
		return FallbackText
	}
	return strings.Join(words, " ")
}

// WordsFor returns how many words a test with settings s needs.
func WordsFor(s model.Settings) int {
	if s.Mode != model.ModeTime {
		return s.WordCount
	}
	need := int(math.Ceil(float64(s.TimeLimit) / 60 * maxWPM))
	if need < s.WordCount {
		return s.WordCount
	}
	return need
}
