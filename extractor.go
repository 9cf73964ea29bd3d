package sitechat

// Article is the main content of an HTML document.
type Article struct {
	Title string

	// ContentHTML has navigation, footers and other boilerplate removed.
	ContentHTML string
}

// ContentExtractor pulls the main content out of a full HTML document.
// It is used for HTML files placed in the documents directory, not for
// crawled pages.
type ContentExtractor interface {
	Extract(html string) (*Article, error)
}
