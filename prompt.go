package sitechat

import "strings"

// SystemPreamble instructs the completion service to stay within the
// supplied content.
const SystemPreamble = "You are an AI assistant. Use the content provided below to answer the user's query. " +
	"Only respond with information based on the provided content. " +
	"Answer clearly and concisely."

// Prompt is the text sent to a completion service, split into the system
// instruction and the user content.
type Prompt struct {
	System string
	User   string
}

// String returns the full prompt text.
func (p Prompt) String() string {
	return p.System + "\n\n" + p.User
}

// BuildPrompt composes the prompt from the aggregated context and the
// user's question. The question is included verbatim.
func BuildPrompt(context, question string) Prompt {
	var sb strings.Builder
	sb.WriteString("Content:\n")
	sb.WriteString(context)
	sb.WriteString("\n\nUser Question: ")
	sb.WriteString(question)

	return Prompt{
		System: SystemPreamble,
		User:   sb.String(),
	}
}
