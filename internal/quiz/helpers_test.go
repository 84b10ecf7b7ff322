package quiz

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/geoquiz/internal/content"
)

// fakeSource is a minimal CountrySource with a fixed number of hints per
// country.
type fakeSource struct {
	keys  []string
	hints int
}

func (f fakeSource) CountryKeys() []string {
	return append([]string(nil), f.keys...)
}

func (f fakeSource) Hints(key string, lang content.Language) ([]string, error) {
	hints := make([]string, f.hints)
	for i := range hints {
		hints[i] = fmt.Sprintf("%s hint %d", key, i+1)
	}
	return hints, nil
}

func newSource(n, hints int) fakeSource {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("c%02d", i)
	}
	return fakeSource{keys: keys, hints: hints}
}

// testCatalog builds a catalog of n countries with the given hint count in
// English and Hindi.
func testCatalog(t *testing.T, n, hints int) *content.Catalog {
	t.Helper()

	countries := make(map[string]content.Country, n)
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("c%02d", i)
		c := content.Country{
			Names: map[content.Language]string{"en": "Country " + key, "hi": "देश " + key},
			Flag:  "xx",
			Hints: map[content.Language][]string{},
			Facts: map[content.Language][]string{
				"en": {"Fact about " + key},
				"hi": {"तथ्य " + key},
			},
		}
		for h := 0; h < hints; h++ {
			c.Hints["en"] = append(c.Hints["en"], fmt.Sprintf("%s hint %d", key, h+1))
			c.Hints["hi"] = append(c.Hints["hi"], fmt.Sprintf("%s संकेत %d", key, h+1))
		}
		countries[key] = c
	}

	tables := []content.Strings{
		content.NewStrings("en", map[string]string{content.KeyGameTitle: "Country Puzzle"}),
		content.NewStrings("hi", map[string]string{content.KeyGameTitle: "देश पहेली"}),
	}

	cat, err := content.NewCatalog(countries, tables)
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return cat
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// scheduled records one Schedule call.
type scheduled struct {
	after  time.Duration
	tok    Token
	handle *fakeHandle
}

type fakeHandle struct {
	cancelled bool
}

func (h *fakeHandle) Cancel() {
	h.cancelled = true
}

// fakeScheduler records timers without firing them.
type fakeScheduler struct {
	calls []scheduled
}

func (s *fakeScheduler) Schedule(after time.Duration, tok Token) Handle {
	h := &fakeHandle{}
	s.calls = append(s.calls, scheduled{after: after, tok: tok, handle: h})
	return h
}

func (s *fakeScheduler) last() scheduled {
	if len(s.calls) == 0 {
		return scheduled{}
	}
	return s.calls[len(s.calls)-1]
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// wrongCandidate returns a candidate that is not the target.
func wrongCandidate(t *testing.T, candidates []string, target string) string {
	t.Helper()
	for _, c := range candidates {
		if c != target {
			return c
		}
	}
	t.Fatalf("no wrong candidate among %v", candidates)
	return ""
}
