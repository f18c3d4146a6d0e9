package generator

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/gideonmt/remytype/internal/model"
)

func TestGeneratePlainWords(t *testing.T) {
	g := NewWithSource(rand.NewSource(1))
	words := []string{"one", "two", "three"}
	out := g.Generate(words, 20, model.TextOptions{})
	if len(out) != 20 {
		t.Fatalf("expected 20 words, got %d", len(out))
	}
	for _, w := range out {
		if w != "one" && w != "two" && w != "three" {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestGenerateAlwaysDecorates(t *testing.T) {
	g := NewWithSource(rand.NewSource(7))
	out := g.Generate([]string{"word"}, 10, model.TextOptions{CapsPct: 1, PunctPct: 1, PunctSet: "."})
	for _, w := range out {
		if !unicode.IsUpper([]rune(w)[0]) {
			t.Fatalf("expected capitalised word, got %q", w)
		}
		if !strings.HasSuffix(w, ".") {
			t.Fatalf("expected punctuation suffix, got %q", w)
		}
	}
}

func TestGenerateDegenerateInputs(t *testing.T) {
	g := NewWithSource(rand.NewSource(1))
	if out := g.Generate(nil, 5, model.TextOptions{}); out != nil {
		t.Fatalf("expected nil for empty word list, got %v", out)
	}
	if out := g.Generate([]string{"a"}, 0, model.TextOptions{}); out != nil {
		t.Fatalf("expected nil for zero count, got %v", out)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	first := NewWithSource(rand.NewSource(42)).Generate(words, 8, model.TextOptions{})
	second := NewWithSource(rand.NewSource(42)).Generate(words, 8, model.TextOptions{})
	if strings.Join(first, " ") != strings.Join(second, " ") {
		t.Fatalf("expected identical output for the same seed")
	}
}
