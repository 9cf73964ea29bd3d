package main

import (
	"fmt"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			if c.Verbose {
				fmt.Fprintf(deps.Stdout, "  %s\n", crawl.TruncateURL(event.URL, 100))
			}
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	session, err := deps.Crawler.CrawlWithProgress(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %s\n", session.RootURL)
	fmt.Fprintf(deps.Stdout, "  Visited %d URLs, %d pages, %d failed\n",
		session.Visited.Len(), len(session.Pages), len(session.Failures))
	fmt.Fprintf(deps.Stdout, "  Text: %d characters (%s)\n",
		sitechat.RuneLen(session.Text()), crawl.FormatBytes(len(session.Text())))
	if session.Canceled {
		fmt.Fprintln(deps.Stdout, "  Canceled before the crawl finished")
	}
	return nil
}
