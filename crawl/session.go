package crawl

import (
	"strings"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/google/uuid"
)

// PageRecord describes one successfully fetched page.
type PageRecord struct {
	URL   string
	Depth int
	Hash  string
	Bytes int
}

// Failure is a page that could not be fetched or was skipped.
type Failure struct {
	URL string
	Err error
}

// Session is the state of one crawl: the visited URLs, the text
// accumulated from every fetched page, and what happened to each page.
// A Session is owned by the goroutine running the crawl until Crawl
// returns it.
type Session struct {
	ID       string
	RootURL  string
	Started  time.Time
	Finished time.Time

	Visited  *VisitedSet
	Pages    []PageRecord
	Failures []Failure

	// Canceled is set when the context ended the walk early.
	Canceled bool

	text strings.Builder
}

// NewSession creates an empty session rooted at rootURL with room for
// about expectedURLs visited URLs.
func NewSession(rootURL string, expectedURLs uint) *Session {
	return &Session{
		ID:      uuid.NewString(),
		RootURL: rootURL,
		Started: time.Now(),
		Visited: NewVisitedSet(expectedURLs),
	}
}

// Text returns the accumulated text of every fetched page in visiting order.
func (s *Session) Text() string {
	return s.text.String()
}

// Duration returns how long the crawl ran. It is zero until the crawl finishes.
func (s *Session) Duration() time.Duration {
	if s.Finished.IsZero() {
		return 0
	}
	return s.Finished.Sub(s.Started)
}

func (s *Session) addPage(t target, html string, page *sitechat.PageText) {
	s.text.WriteString(page.String())
	s.Pages = append(s.Pages, PageRecord{
		URL:   t.url,
		Depth: t.depth,
		Hash:  computeHash(html),
		Bytes: len(html),
	})
}

func (s *Session) addFailure(url string, err error) {
	s.Failures = append(s.Failures, Failure{URL: url, Err: err})
}
