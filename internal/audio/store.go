package audio

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store serves pronunciation clips as file paths keyed by spelling.
// The transport layer treats the path as an opaque media handle.
type Store struct {
	dir string
}

// NewStore creates an audio store over a directory of mp3 files
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// PathFor returns the clip path for a word, or false if no clip exists
func (s *Store) PathFor(spelling string) (string, bool) {
	path := filepath.Join(s.dir, strings.ToLower(spelling)+".mp3")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Fetcher downloads pronunciation clips from the Google Translate TTS
// endpoint. Used by the seed tool, not by request handlers.
type Fetcher struct {
	dir  string
	http *http.Client
}

// NewFetcher creates a TTS fetcher writing into dir
func NewFetcher(dir string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		dir:  dir,
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the clip for a word, skipping words that already have one
func (f *Fetcher) Fetch(spelling string) error {
	path := filepath.Join(f.dir, strings.ToLower(spelling)+".mp3")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio dir: %w", err)
	}

	ttsURL := fmt.Sprintf(
		"https://translate.google.com/translate_tts?ie=UTF-8&client=tw-ob&tl=en&q=%s",
		url.QueryEscape(spelling),
	)

	resp, err := f.http.Get(ttsURL)
	if err != nil {
		return fmt.Errorf("failed to fetch tts audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tts request failed with status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}
