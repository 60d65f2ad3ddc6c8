package match_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-ojo/applytrack/internal/match"
)

func date(day int) *time.Time {
	t := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	return &t
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Google Inc", "google inc"},
		{"strips punctuation", "Acme, Corp. (US)", "acme corp us"},
		{"collapses whitespace", "  Senior   Engineer \t II ", "senior engineer ii"},
		{"keeps digits", "Area 51 Labs", "area 51 labs"},
		{"empty", "", ""},
		{"only punctuation", "***!!!", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, match.Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Google, Inc.", "  SOFTWARE engineer ", "Łódź-based team", "a1 b2  c3!",
	}
	for _, in := range inputs {
		once := match.Normalize(in)
		assert.Equal(t, once, match.Normalize(once), "Normalize(Normalize(%q))", in)
	}
}

func TestStringSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"google", "software engineer", "x1"} {
		assert.Equal(t, 1.0, match.StringSimilarity(s, s))
	}
}

func TestStringSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, match.StringSimilarity("", "google"))
	assert.Equal(t, 0.0, match.StringSimilarity("google", ""))
	assert.Equal(t, 0.0, match.StringSimilarity("", ""))
}

func TestStringSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"google", "google inc"},
		{"mountain view", "mountain view ca"},
		{"night", "nacht"},
		{"ab", "ba"},
	}
	for _, p := range pairs {
		assert.Equal(t, match.StringSimilarity(p[0], p[1]), match.StringSimilarity(p[1], p[0]),
			"similarity(%q,%q)", p[0], p[1])
	}
}

func TestStringSimilarity_BigramDice(t *testing.T) {
	// "google" has 5 bigrams, "google inc" has 9; all 5 of google's
	// bigrams occur in "google inc", and 5 of "google inc"'s occur in
	// "google": 2*5/14 from the a-side membership count.
	got := match.StringSimilarity("google inc", "google")
	assert.InDelta(t, 10.0/14.0, got, 1e-9)

	// Single characters have no bigrams: union is zero.
	assert.Equal(t, 0.0, match.StringSimilarity("a", "b"))
}

func TestStringSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"stripe", "strive"}, {"acme corp", "acme"}, {"xyz", "zyx"}, {"a b c", "c b a"},
	}
	for _, p := range pairs {
		got := match.StringSimilarity(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestDateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, match.DateSimilarity(date(0), date(0)))
	assert.InDelta(t, 1-2.0/30.0, match.DateSimilarity(date(0), date(2)), 1e-9)
	assert.InDelta(t, 0.5, match.DateSimilarity(date(0), date(15)), 1e-9)
	assert.Equal(t, 0.0, match.DateSimilarity(date(0), date(30)))
	assert.Equal(t, 0.0, match.DateSimilarity(date(0), date(90)))
	assert.Equal(t, 0.0, match.DateSimilarity(nil, date(0)))
	assert.Equal(t, 0.0, match.DateSimilarity(date(0), nil))
}

func TestDateSimilarity_Monotone(t *testing.T) {
	prev := 1.1
	for gap := 0; gap <= 45; gap++ {
		got := match.DateSimilarity(date(0), date(gap))
		require.LessOrEqual(t, got, prev, "gap %d", gap)
		prev = got
	}
}

func TestLocationSimilarity_BothEmpty(t *testing.T) {
	a := match.Fields{Company: "Acme", Title: "Engineer"}
	b := match.Fields{Company: "Acme", Title: "Engineer"}
	assert.Equal(t, 0.5, match.LocationSimilarity(a, b))
}

func TestLocationSimilarity_OneEmpty(t *testing.T) {
	a := match.Fields{City: "Austin", State: "TX"}
	b := match.Fields{}
	assert.Equal(t, 0.0, match.LocationSimilarity(a, b))
}

func TestLocationSimilarity_Combined(t *testing.T) {
	a := match.Fields{City: "Mountain View", State: "CA"}
	b := match.Fields{City: "Mountain View", State: "CA"}
	assert.Equal(t, 1.0, match.LocationSimilarity(a, b))
}

func TestScore_WeightedComposite(t *testing.T) {
	a := match.Fields{Company: "Stripe", Title: "Backend Engineer", City: "Dublin", AppliedAt: date(0)}
	b := match.Fields{Company: "Stripe Inc", Title: "Backend Engineer", City: "Dublin", AppliedAt: date(5)}

	r := match.Score(a, b)
	want := 0.40*r.Company + 0.35*r.Title + 0.15*r.Location + 0.10*r.Date
	assert.InDelta(t, want, r.Composite, 1e-9)
	assert.GreaterOrEqual(t, r.Composite, 0.0)
	assert.LessOrEqual(t, r.Composite, 1.0)
}

func TestScore_Symmetric(t *testing.T) {
	a := match.Fields{Company: "Google Inc", Title: "SWE", City: "NYC", AppliedAt: date(0)}
	b := match.Fields{Company: "Google", Title: "Software Engineer", City: "New York", AppliedAt: date(7)}
	assert.Equal(t, match.Score(a, b), match.Score(b, a))
}

func TestScore_GoogleScenario(t *testing.T) {
	a := match.Fields{
		Company:   "Google Inc",
		Title:     "Software Engineer",
		City:      "Mountain View",
		State:     "CA",
		AppliedAt: date(0),
	}
	b := match.Fields{
		Company:   "Google",
		Title:     "Software Engineer",
		City:      "Mountain View",
		State:     "CA",
		AppliedAt: date(2),
	}

	r := match.Score(a, b)
	assert.InDelta(t, 10.0/14.0, r.Company, 1e-9)
	assert.Equal(t, 1.0, r.Title)
	assert.Equal(t, 1.0, r.Location)
	assert.InDelta(t, 1-2.0/30.0, r.Date, 1e-9)
	assert.GreaterOrEqual(t, r.Composite, match.DuplicateThreshold)
}

func TestScore_Unrelated(t *testing.T) {
	a := match.Fields{Company: "Stripe", Title: "Data Scientist", City: "Dublin", AppliedAt: date(0)}
	b := match.Fields{Company: "Netflix", Title: "Product Manager", City: "Los Gatos", AppliedAt: date(60)}
	r := match.Score(a, b)
	assert.Less(t, r.Composite, match.DuplicateThreshold)
}
