// Package bench provides evaluation utilities for the steganographic
// encoder: corpora of secret messages, round-trip metrics, and beam-width
// sweeps.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from a message-set file header.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from leading "# Key: value" comments.
// Returns the header and the remaining body text.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := strings.TrimSpace(text[bodyStart:])
	return h, body, nil
}

// MessageSet is a loaded collection of secret messages to encode.
type MessageSet struct {
	ID       string // filename without extension
	Source   string
	Title    string
	Messages []string // one secret per non-empty body line
}

// LoadMessageSet loads and parses a message-set file.
func LoadMessageSet(path string) (*MessageSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	var messages []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		messages = append(messages, line)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &MessageSet{
		ID:       id,
		Source:   header.Source,
		Title:    header.Title,
		Messages: messages,
	}, nil
}

// LoadCorpus loads all .txt message-set files from a directory.
func LoadCorpus(dir string) ([]*MessageSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var sets []*MessageSet
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		set, err := LoadMessageSet(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		sets = append(sets, set)
	}

	return sets, nil
}
