package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDictionary reads one word per line, lowercased. Blank lines are
// skipped; duplicates are kept in file order.
func LoadDictionary(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return words, nil
}

// LoadDictionaryFile opens path and reads it with LoadDictionary.
func LoadDictionaryFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	words, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
