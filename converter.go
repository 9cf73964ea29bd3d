package sitechat

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms cleaned HTML into Markdown text.
	Convert(html string) (string, error)
}
