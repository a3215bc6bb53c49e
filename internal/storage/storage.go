// Package storage reads corpora and persists fitted models.
package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/happyhackingspace/bow/internal/htmlutil"
)

const maxLineSize = 16 * 1024 * 1024

// ReadCorpus loads documents from path. A regular file yields one document
// per line; a directory yields one document per file, in name order.
// HTML files contribute their visible text.
func ReadCorpus(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return readCorpusDir(path)
	}
	if isHTML(path) {
		doc, err := readHTMLFile(path)
		if err != nil {
			return nil, err
		}
		return []string{doc}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	docs, err := ReadCorpusFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return docs, nil
}

// ReadCorpusFrom reads one document per line. Blank lines are kept as empty
// documents so row numbers match line numbers.
func ReadCorpusFrom(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	docs := []string{}
	for sc.Scan() {
		docs = append(docs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func readCorpusDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	docs := []string{}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			slog.Debug("Skipping corpus entry", "path", filepath.Join(dir, e.Name()))
			continue
		}
		path := filepath.Join(dir, e.Name())
		var doc string
		if isHTML(path) {
			doc, err = readHTMLFile(path)
		} else {
			var data []byte
			data, err = os.ReadFile(path)
			doc = string(data)
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func readHTMLFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	text, err := htmlutil.ExtractText(f)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	return text, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// SaveJSON writes v as indented JSON, creating parent directories.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create model dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON decodes the JSON file at path into v.
func LoadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// IsURL reports whether target names an http or https resource.
func IsURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// FetchDocument downloads target and returns its visible text as one document.
func FetchDocument(ctx context.Context, client *http.Client, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch URL: HTTP %d", resp.StatusCode)
	}
	text, err := htmlutil.ExtractText(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", target, err)
	}
	return text, nil
}
