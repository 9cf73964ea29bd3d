package sitechat

import "context"

// Completer sends a prompt to an external text-completion service.
type Completer interface {
	// Complete returns the service's answer for the given system
	// instruction and user content. Failures, including responses without
	// a usable answer, are reported as *CompletionError.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Asker answers questions about the ingested website and documents.
type Asker interface {
	// Ask answers a natural language question.
	// Returns EINVALID for an empty question and EUNAVAILABLE while the
	// initial ingestion is still running.
	Ask(ctx context.Context, question string) (string, error)
}
