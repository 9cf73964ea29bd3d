package sitechat_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("uses the fixed preamble as system instruction", func(t *testing.T) {
		t.Parallel()

		p := sitechat.BuildPrompt("ctx", "q")

		assert.Equal(t, sitechat.SystemPreamble, p.System)
	})

	t.Run("contains context and labeled question", func(t *testing.T) {
		t.Parallel()

		p := sitechat.BuildPrompt("We open at 9am.", "When do you open?")

		assert.Equal(t, "Content:\nWe open at 9am.\n\nUser Question: When do you open?", p.User)
	})

	t.Run("keeps the question verbatim", func(t *testing.T) {
		t.Parallel()

		question := "  what about \"quotes\" and\nnewlines?  "
		p := sitechat.BuildPrompt("", question)

		assert.Contains(t, p.User, "User Question: "+question)
	})

	t.Run("full text starts with preamble", func(t *testing.T) {
		t.Parallel()

		p := sitechat.BuildPrompt("ctx", "q")

		assert.Equal(t, sitechat.SystemPreamble+"\n\n"+p.User, p.String())
	})
}
