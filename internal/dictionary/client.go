package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNotAvailable means enrichment data could not be fetched.
// Every failure mode (timeout, non-200, malformed body) collapses to it.
var ErrNotAvailable = errors.New("dictionary data not available")

// Entry is the enrichment data for one word
type Entry struct {
	Word      string
	Phonetics []string
	Meanings  []Meaning
}

// Meaning groups definitions under a part of speech
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
	Synonyms     []string
	Antonyms     []string
}

// Definition is a single definition with an optional usage example
type Definition struct {
	Text    string
	Example string
}

// Client fetches word definitions from the dictionary API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a dictionary client with a bounded request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// wire format of api.dictionaryapi.dev
type apiEntry struct {
	Word      string `json:"word"`
	Phonetics []struct {
		Text string `json:"text"`
	} `json:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
		Synonyms []string `json:"synonyms"`
		Antonyms []string `json:"antonyms"`
	} `json:"meanings"`
}

// Lookup fetches the entry for a word. Returns ErrNotAvailable on any
// failure so callers can degrade to placeholder text.
func (c *Client) Lookup(ctx context.Context, word string) (*Entry, error) {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, ErrNotAvailable
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrNotAvailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotAvailable
	}

	var entries []apiEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, ErrNotAvailable
	}
	if len(entries) == 0 {
		return nil, ErrNotAvailable
	}

	return convert(entries[0]), nil
}

func convert(e apiEntry) *Entry {
	entry := &Entry{Word: e.Word}

	for _, p := range e.Phonetics {
		if p.Text != "" {
			entry.Phonetics = append(entry.Phonetics, p.Text)
		}
	}

	for _, m := range e.Meanings {
		meaning := Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Synonyms:     m.Synonyms,
			Antonyms:     m.Antonyms,
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, Definition{
				Text:    d.Definition,
				Example: d.Example,
			})
		}
		entry.Meanings = append(entry.Meanings, meaning)
	}

	return entry
}
