package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// BibleService proxies passage lookups to an external scripture provider.
// The provider owns the text; this service only forwards the passage key and
// relays the structured response.
type BibleService struct {
	BaseURL string
	Client  *http.Client
}

func NewBibleService(baseURL string) *BibleService {
	return &BibleService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type BibleBook struct {
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

var bibleBooks = []BibleBook{
	{Name: "Genesis", Chapters: 50},
	{Name: "Exodus", Chapters: 40},
	{Name: "Matthew", Chapters: 28},
	{Name: "John", Chapters: 21},
}

var bibleVersions = []string{"KJV", "NIV"}

func (s *BibleService) Books() []BibleBook {
	return bibleBooks
}

func (s *BibleService) Versions() []string {
	return bibleVersions
}

type BibleSearchResult struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

var bibleSearchIndex = []BibleSearchResult{
	{Book: "John", Chapter: 3, Verse: 16, Text: "For God so loved the world..."},
	{Book: "Genesis", Chapter: 1, Verse: 1, Text: "In the beginning God created the heavens and the earth."},
	{Book: "Psalms", Chapter: 23, Verse: 1, Text: "The Lord is my shepherd; I shall not want."},
	{Book: "Matthew", Chapter: 5, Verse: 9, Text: "Blessed are the peacemakers..."},
}

// Search matches the query against the built-in verse index. An empty query
// returns the whole index.
func (s *BibleService) Search(query string) []BibleSearchResult {
	if query == "" {
		return bibleSearchIndex
	}
	q := strings.ToLower(query)
	out := []BibleSearchResult{}
	for _, v := range bibleSearchIndex {
		if strings.Contains(strings.ToLower(v.Book), q) || strings.Contains(strings.ToLower(v.Text), q) {
			out = append(out, v)
		}
	}
	return out
}

// Passage fetches a passage like "John 3:16" from the provider and returns
// its decoded payload as-is. Any provider failure comes back wrapped in
// ErrUpstream with the provider's message preserved.
func (s *BibleService) Passage(ctx context.Context, passage string) (map[string]interface{}, error) {
	if passage == "" {
		return nil, ErrValidation
	}

	endpoint := s.BaseURL + "/" + url.PathEscape(passage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return payload, nil
}
