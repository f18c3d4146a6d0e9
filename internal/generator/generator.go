// Package generator builds typing text sequences.
package generator

import (
	"math/rand"
	"time"
	"unicode"

	"github.com/gideonmt/remytype/internal/model"
)

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Generate selects count words uniformly and applies caps/punctuation rules.
func (g *Generator) Generate(words []string, count int, opts model.TextOptions) []string {
	if count <= 0 || len(words) == 0 {
		return nil
	}
	punctSet := []rune(opts.PunctSet)
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, opts.CapsPct)
		word = applyPunct(g.rnd, word, opts.PunctPct, punctSet)
		result = append(result, word)
	}
	return result
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
