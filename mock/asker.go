package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Asker = (*Asker)(nil)

// Asker is a mock implementation of sitechat.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}

var _ sitechat.Completer = (*Completer)(nil)

// Completer is a mock implementation of sitechat.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, system, user string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, system, user string) (string, error) {
	return c.CompleteFn(ctx, system, user)
}
