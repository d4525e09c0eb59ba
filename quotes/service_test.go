package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func testService(apiURL, pageURL string) *Service {
	s := NewService()
	s.apiURL = apiURL
	s.pageURL = pageURL
	return s
}

// deadServer returns a server URL that refuses connections
func deadServer() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return srv.URL
}

// TestFetchFromAPI tests the happy path against the JSON API
func TestFetchFromAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"q": "Stay focused.", "a": "Somebody Wise"}]`))
	}))
	defer srv.Close()

	s := testService(srv.URL, deadServer())
	quote := s.Fetch(context.Background())
	if quote.Text != "Stay focused." {
		t.Errorf("Expected API quote text, got %q", quote.Text)
	}
	if quote.Author != "Somebody Wise" {
		t.Errorf("Expected API quote author, got %q", quote.Author)
	}
}

// TestFetchFallsBackToPage tests that a failing API falls through to the
// HTML page source
func TestFetchFallsBackToPage(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()

	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="quote">
			<span class="text">“Do the work.”</span>
			<small class="author">Steven Pressfield</small>
		</div></body></html>`))
	}))
	defer page.Close()

	s := testService(api.URL, page.URL)
	quote := s.Fetch(context.Background())
	if quote.Author != "Steven Pressfield" {
		t.Errorf("Expected page quote author, got %q", quote.Author)
	}
}

// TestFetchFallsBackToStaticList tests that total remote failure still
// produces a non-empty quote
func TestFetchFallsBackToStaticList(t *testing.T) {
	dead := deadServer()
	s := testService(dead, dead)

	quote := s.Fetch(context.Background())
	if quote.Text == "" || quote.Author == "" {
		t.Errorf("Fallback quote must be non-empty, got %+v", quote)
	}
}

// TestFetchMalformedAPIResponse tests that a parse failure degrades cleanly
func TestFetchMalformedAPIResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"this is": "not an array"`))
	}))
	defer srv.Close()

	s := testService(srv.URL, deadServer())
	quote := s.Fetch(context.Background())
	if quote.Text == "" {
		t.Error("Malformed response should yield a fallback quote")
	}
}

// TestFetchHonorsContextCancellation tests that a cancelled context does not
// hang on a slow server and still yields a fallback
func TestFetchHonorsContextCancellation(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer slow.Close()

	s := testService(slow.URL, slow.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	quote := s.Fetch(ctx)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Fetch should return promptly after cancellation, took %v", elapsed)
	}
	if quote.Text == "" {
		t.Error("Cancelled fetch should still yield a fallback quote")
	}
}

// TestConcurrentFetchesFallBackSafely tests that rapid repeated fetches, the
// way quick taps on the quote area spawn them, can all hit the fallback path
// at once
func TestConcurrentFetchesFallBackSafely(t *testing.T) {
	dead := deadServer()
	s := testService(dead, dead)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if quote := s.Fetch(context.Background()); quote.Text == "" {
				t.Error("Concurrent fetch should still yield a fallback quote")
			}
		}()
	}
	wg.Wait()
}

// TestFallbackIsAlwaysNonEmpty tests every entry of the bundled list
func TestFallbackIsAlwaysNonEmpty(t *testing.T) {
	for _, q := range fallbackQuotes {
		if q.Text == "" || q.Author == "" {
			t.Errorf("Bundled quote has empty fields: %+v", q)
		}
	}
}

// TestQuoteString tests the display formatting
func TestQuoteString(t *testing.T) {
	q := Quote{Text: "Begin.", Author: "Anonymous"}
	want := "\"Begin.\"\n- Anonymous"
	if got := q.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
