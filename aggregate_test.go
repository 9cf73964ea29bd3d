package sitechat_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("cuts at max length without regard to words", func(t *testing.T) {
		t.Parallel()

		got := sitechat.Aggregate("hello world", sitechat.DocumentPool{}, 10)

		assert.Equal(t, "hello worl", got)
	})

	t.Run("returns exact concatenation when under the limit", func(t *testing.T) {
		t.Parallel()

		docs := sitechat.DocumentPool{"b.pdf": "beta", "a.pdf": "alpha"}

		got := sitechat.Aggregate("site", docs, 100)

		assert.Equal(t, "site\nalpha\nbeta", got)
	})

	t.Run("places crawl text before documents", func(t *testing.T) {
		t.Parallel()

		docs := sitechat.DocumentPool{"a.txt": "document"}

		got := sitechat.Aggregate("crawl", docs, 8)

		assert.Equal(t, "crawl\ndo", got)
	})

	t.Run("skips empty pieces", func(t *testing.T) {
		t.Parallel()

		docs := sitechat.DocumentPool{"corrupt.pdf": "", "ok.pdf": "text"}

		assert.Equal(t, "text", sitechat.Aggregate("", docs, 100))
	})

	t.Run("is deterministic across map iteration order", func(t *testing.T) {
		t.Parallel()

		docs := sitechat.DocumentPool{"c": "3", "a": "1", "b": "2", "d": "4"}

		first := sitechat.Aggregate("x", docs, 100)
		for range 20 {
			assert.Equal(t, first, sitechat.Aggregate("x", docs, 100))
		}
		assert.Equal(t, "x\n1\n2\n3\n4", first)
	})

	t.Run("never exceeds max length", func(t *testing.T) {
		t.Parallel()

		crawl := strings.Repeat("página ", 50)
		docs := sitechat.DocumentPool{"a": strings.Repeat("ü", 300)}

		for _, limit := range []int{0, 1, 7, 64, 349, 350, 351, 1000} {
			got := sitechat.Aggregate(crawl, docs, limit)
			assert.LessOrEqual(t, sitechat.RuneLen(got), limit)
		}
	})
}

func TestAggregateWithLimits(t *testing.T) {
	t.Parallel()

	t.Run("caps each pool before the total", func(t *testing.T) {
		t.Parallel()

		docs := sitechat.DocumentPool{"a.pdf": "0123456789"}

		got := sitechat.AggregateWithLimits("abcdefghij", docs, sitechat.Limits{
			Total:     100,
			Crawl:     3,
			Documents: 4,
		})

		assert.Equal(t, "abc\n0123", got)
	})

	t.Run("total bound holds after per-pool caps", func(t *testing.T) {
		t.Parallel()

		docs := sitechat.DocumentPool{"a.pdf": "0123456789"}

		got := sitechat.AggregateWithLimits("abcdefghij", docs, sitechat.Limits{
			Total:     5,
			Crawl:     8,
			Documents: 8,
		})

		assert.Equal(t, "abcde", got)
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("keeps short strings intact", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short", sitechat.Truncate("short", 10))
	})

	t.Run("does not split multi-byte characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "héll", sitechat.Truncate("héllo", 4))
	})

	t.Run("returns empty for non-positive limits", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, sitechat.Truncate("text", 0))
		assert.Empty(t, sitechat.Truncate("text", -1))
	})
}
