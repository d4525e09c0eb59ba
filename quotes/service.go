package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// FetchTimeout bounds a single quote request
const FetchTimeout = 3 * time.Second

// Quote is one motivational quote
type Quote struct {
	Text   string
	Author string
}

// String formats the quote for display
func (q Quote) String() string {
	return fmt.Sprintf("\"%s\"\n- %s", q.Text, q.Author)
}

// fallbackQuotes is used whenever no remote source can be reached
var fallbackQuotes = []Quote{
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Focus on being productive instead of busy.", Author: "Tim Ferriss"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Either you run the day or the day runs you.", Author: "Jim Rohn"},
}

// Service fetches motivational quotes. The JSON API is tried first, then an
// HTML quote page, then the bundled fallback list. Fetch never fails from
// the caller's point of view.
type Service struct {
	apiURL     string
	pageURL    string
	httpClient *http.Client
}

// NewService creates a new quote service against the default sources
func NewService() *Service {
	return &Service{
		apiURL:  "https://zenquotes.io/api/random",
		pageURL: "https://quotes.toscrape.com/random",
		httpClient: &http.Client{
			Timeout: FetchTimeout,
		},
	}
}

// Fetch returns a quote. Remote failures of any kind (network, timeout,
// bad status, malformed body) degrade silently to a fallback quote.
func (s *Service) Fetch(ctx context.Context) Quote {
	if quote, err := s.fetchFromAPI(ctx); err == nil {
		return quote
	}
	if quote, err := s.fetchFromPage(ctx); err == nil {
		return quote
	}
	return s.Fallback()
}

// Fallback returns a random entry from the bundled quote list. The package
// source is locked, so concurrent fetches may land here together.
func (s *Service) Fallback() Quote {
	return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
}

// apiQuote mirrors the ZenQuotes response shape
type apiQuote struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// fetchFromAPI gets a quote from the JSON API
func (s *Service) fetchFromAPI(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to read quote response: %w", err)
	}

	var quotes []apiQuote
	if err := json.Unmarshal(body, &quotes); err != nil {
		return Quote{}, fmt.Errorf("failed to parse quote response: %w", err)
	}
	if len(quotes) == 0 || quotes[0].Text == "" {
		return Quote{}, fmt.Errorf("quote API returned an empty result")
	}

	return Quote{Text: quotes[0].Text, Author: quotes[0].Author}, nil
}

// fetchFromPage scrapes a quote from an HTML quote page
func (s *Service) fetchFromPage(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to build page request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to fetch quote page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to parse quote page: %w", err)
	}

	block := doc.Find(".quote").First()
	text := strings.TrimSpace(block.Find(".text").Text())
	author := strings.TrimSpace(block.Find(".author").Text())

	// The page wraps quotes in typographic double quotes
	text = strings.Trim(text, "“”\"")
	if text == "" {
		return Quote{}, fmt.Errorf("no quote found on page")
	}
	if author == "" {
		author = "Unknown"
	}

	return Quote{Text: text, Author: author}, nil
}
