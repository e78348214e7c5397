package modules

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LineSource returns the lines of a text file.
type LineSource interface {
	Lines(path string) ([]string, error)
}

// HeaderReader reads module headers from disk and keeps the most recently
// used ones in memory.
type HeaderReader struct {
	cache *lru.Cache[string, []string]
}

// NewHeaderReader returns a reader that caches up to size headers.
func NewHeaderReader(size int) (*HeaderReader, error) {
	if size <= 0 {
		return nil, fmt.Errorf("header cache size must be positive, got %d", size)
	}
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &HeaderReader{cache: cache}, nil
}

// Lines implements LineSource. Line terminators, including a trailing
// carriage return, are stripped; a UTF-8 byte order mark is dropped.
func (r *HeaderReader) Lines(path string) ([]string, error) {
	if lines, ok := r.cache.Get(path); ok {
		return lines, nil
	}

	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	r.cache.Add(path, lines)
	return lines, nil
}

// Len is the number of cached headers.
func (r *HeaderReader) Len() int {
	return r.cache.Len()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(transform.NewReader(f, unicode.BOMOverride(transform.Nop)))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
