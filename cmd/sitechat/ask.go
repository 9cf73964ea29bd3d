package main

import (
	"fmt"

	"github.com/fwojciec/sitechat"
)

// Run executes the ask command. Content is ingested first; partial
// ingestion failures are reported but do not stop the question.
func (c *AskCmd) Run(deps *Dependencies) error {
	if err := deps.Ingester.Run(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %v\n", err)
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
