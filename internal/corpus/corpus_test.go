package corpus

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gideonmt/remytype/internal/generator"
	"github.com/gideonmt/remytype/internal/model"
	"github.com/gideonmt/remytype/internal/wordlist"
)

func newTestProvider(lists ...wordlist.List) *Provider {
	return New(generator.NewWithSource(rand.NewSource(1)), model.TextOptions{}, lists...)
}

func TestBuiltinLists(t *testing.T) {
	lists := Builtin()
	require.Len(t, lists, 2)
	require.Equal(t, "english_200", lists[0].Name)
	require.Len(t, lists[0].Words, 200)
	require.Equal(t, "english_1k", lists[1].Name)
	require.Len(t, lists[1].Words, 1000)
	for _, l := range lists {
		filter := wordlist.FilterForLang(l.Name)
		for _, w := range l.Words {
			require.Truef(t, filter(w), "embedded word %q in %s rejected by filter", w, l.Name)
		}
	}
}

func TestGenerateWordCount(t *testing.T) {
	p := newTestProvider(Builtin()...)
	text := p.Generate("english_200", 25)
	require.Len(t, strings.Fields(text), 25)
	require.NotContains(t, text, "  ")
}

func TestGenerateUnknownLanguageFallsBack(t *testing.T) {
	p := newTestProvider(Builtin()...)
	require.Equal(t, FallbackText, p.Generate("klingon", 10))
	require.Equal(t, FallbackText, p.Generate("english_200", 0))
}

func TestNamesKeepOrderAndDropDuplicates(t *testing.T) {
	p := newTestProvider(
		wordlist.List{Name: "a", Words: []string{"x"}},
		wordlist.List{Name: "b", Words: []string{"y"}},
		wordlist.List{Name: "a", Words: []string{"z"}},
		wordlist.List{Name: "empty"},
	)
	require.Equal(t, []string{"a", "b"}, p.Names())
	require.True(t, p.Has("b"))
	require.False(t, p.Has("empty"))
	require.Equal(t, "x x x", p.Generate("a", 3))
	require.Equal(t, 1, p.Size("a"))
	require.Zero(t, p.Size("nope"))
}

func TestWordsFor(t *testing.T) {
	require.Equal(t, 30, WordsFor(model.Settings{Mode: model.ModeWords, WordCount: 30, TimeLimit: 300}))
	require.Equal(t, 100, WordsFor(model.Settings{Mode: model.ModeTime, WordCount: 50, TimeLimit: 30}))
	require.Equal(t, 200, WordsFor(model.Settings{Mode: model.ModeTime, WordCount: 200, TimeLimit: 15}))
}
