package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/temoto/robotstxt"
)

// DefaultRobotsTimeout bounds the download of a robots.txt file.
const DefaultRobotsTimeout = 5 * time.Second

var _ sitechat.RobotsPolicy = (*RobotsService)(nil)

// RobotsService answers robots.txt questions. Each host's rules are kept
// once the host has given a definitive answer: a parsed file or a 4xx,
// which allows everything. Transport failures and 5xx answers are retried
// on the next question; until then a failed download allows the URL and a
// 5xx disallows it.
type RobotsService struct {
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	hosts map[string]*robotstxt.RobotsData
}

// NewRobotsService creates a RobotsService that matches rules for userAgent.
func NewRobotsService(userAgent string) *RobotsService {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &RobotsService{
		client:    &http.Client{Timeout: DefaultRobotsTimeout},
		userAgent: userAgent,
		hosts:     make(map[string]*robotstxt.RobotsData),
	}
}

// Allowed reports whether rawURL may be fetched.
func (s *RobotsService) Allowed(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return true
	}

	data := s.rules(ctx, u)
	if data == nil {
		return true
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return data.TestAgent(path, s.userAgent)
}

// CrawlDelay returns the Crawl-delay the host of rawURL asks for, or zero.
func (s *RobotsService) CrawlDelay(ctx context.Context, rawURL string) time.Duration {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return 0
	}
	if data := s.rules(ctx, u); data != nil {
		return data.FindGroup(s.userAgent).CrawlDelay
	}
	return 0
}

func (s *RobotsService) rules(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	key := strings.ToLower(u.Scheme + "://" + u.Host)

	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.hosts[key]; ok {
		return data
	}
	data, final := s.fetch(ctx, key+"/robots.txt")
	if final {
		s.hosts[key] = data
	}
	return data
}

// fetch downloads and parses robots.txt. final reports whether the result
// may be kept for the rest of the service's life.
func (s *RobotsService) fetch(ctx context.Context, robotsURL string) (data *robotstxt.RobotsData, final bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, false
	}
	return data, resp.StatusCode < http.StatusInternalServerError
}
