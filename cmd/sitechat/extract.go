package main

import (
	"fmt"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	dir := c.Dir
	if dir == "" {
		dir = deps.DocsDir
	}

	pool, err := deps.Scanner.ExtractAll(deps.Ctx, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	if len(pool) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents in %s\n", dir)
		return nil
	}

	total := 0
	for _, name := range pool.Names() {
		text := pool[name]
		total += len(text)
		if text == "" {
			fmt.Fprintf(deps.Stdout, "  %s: no text\n", name)
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %s: %d characters\n", name, sitechat.RuneLen(text))
	}
	fmt.Fprintf(deps.Stdout, "Extracted %d documents (%s)\n", len(pool), crawl.FormatBytes(total))
	return nil
}
