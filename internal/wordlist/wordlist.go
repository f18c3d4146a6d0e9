// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the file extension of word list files.
const Ext = ".txt"

// ParseWords reads one word per line, skipping blank lines and '#' comments.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ParseWords(file)
}

// List is a named word list.
type List struct {
	Name  string
	Words []string
}

// LoadDir loads every *.txt file in dir as a list named after the file.
// A missing directory yields no lists. Files that fail to load are reported
// through skip and left out.
func LoadDir(dir string, skip func(path string, err error)) ([]List, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	lists := make([]List, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		listName := strings.TrimSuffix(name, Ext)
		words, err := LoadWords(path)
		if err == nil {
			words = Filter(words, FilterForLang(listName))
			if len(words) == 0 {
				err = fmt.Errorf("no usable words after filtering")
			}
		}
		if err != nil {
			if skip != nil {
				skip(path, err)
			}
			continue
		}
		lists = append(lists, List{Name: listName, Words: words})
	}
	return lists, nil
}
