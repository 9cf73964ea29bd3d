package mock

import "github.com/fwojciec/sitechat"

var _ sitechat.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of sitechat.PageParser.
type PageParser struct {
	ParseFn func(html, baseURL string) (*sitechat.PageText, []string)
}

func (p *PageParser) Parse(html, baseURL string) (*sitechat.PageText, []string) {
	return p.ParseFn(html, baseURL)
}
