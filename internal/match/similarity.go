// Package match computes similarity scores between job records.
// Every function is pure: no persistence, no user identity, no I/O.
package match

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Weights of the composite score. Changing these changes detection
// sensitivity and must be versioned deliberately, not tuned ad hoc.
const (
	CompanyWeight  = 0.40
	TitleWeight    = 0.35
	LocationWeight = 0.15
	DateWeight     = 0.10
)

// DuplicateThreshold is the minimum composite score for two jobs to be
// flagged as likely duplicates.
const DuplicateThreshold = 0.70

// dateDecayDays is the gap at which date similarity reaches zero.
const dateDecayDays = 30.0

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
var spaces = regexp.MustCompile(`\s+`)

// Fields carries the job attributes the scorer compares.
type Fields struct {
	Company   string
	Title     string
	City      string
	State     string
	Country   string
	AppliedAt *time.Time
}

// Result holds the four component scores and their weighted combination.
type Result struct {
	Company   float64
	Title     float64
	Location  float64
	Date      float64
	Composite float64
}

// Normalize lowercases, strips everything outside [a-z0-9\s], collapses
// whitespace runs to a single space, and trims. Idempotent and total.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "")
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StringSimilarity returns the Dice coefficient over character bigrams
// of two already-normalized strings. Equal strings score 1, and an empty
// string on either side scores 0.
func StringSimilarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)
	union := len(bigramsA) + len(bigramsB)
	if union == 0 {
		return 0
	}

	setB := make(map[string]struct{}, len(bigramsB))
	for _, g := range bigramsB {
		setB[g] = struct{}{}
	}

	// Membership test per occurrence in a, not multiset subtraction.
	intersection := 0
	for _, g := range bigramsA {
		if _, ok := setB[g]; ok {
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(union)
}

// bigrams returns the overlapping 2-character substrings of s, duplicates
// included.
func bigrams(s string) []string {
	if len(s) < 2 {
		return nil
	}
	out := make([]string, 0, len(s)-1)
	for i := 0; i+2 <= len(s); i++ {
		out = append(out, s[i:i+2])
	}
	return out
}

// LocationSimilarity compares the combined "city state country" strings.
// Two jobs with no location data at all score a neutral 0.5: absence of
// data is not evidence of a mismatch.
func LocationSimilarity(a, b Fields) float64 {
	locA := Normalize(joinLocation(a))
	locB := Normalize(joinLocation(b))
	if locA == "" && locB == "" {
		return 0.5
	}
	return StringSimilarity(locA, locB)
}

func joinLocation(f Fields) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.City, f.State, f.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// DateSimilarity scores 1 at a zero-day gap, decaying linearly to 0 at a
// gap of 30 days or more. A missing date on either side scores 0.
func DateSimilarity(a, b *time.Time) float64 {
	if a == nil || b == nil {
		return 0
	}
	diffDays := math.Abs(a.Sub(*b).Hours() / 24)
	return math.Max(0, 1-diffDays/dateDecayDays)
}

// Score computes the component similarities between two jobs and their
// weighted composite. All components are symmetric, so Score(a, b) and
// Score(b, a) are identical.
func Score(a, b Fields) Result {
	r := Result{
		Company:  StringSimilarity(Normalize(a.Company), Normalize(b.Company)),
		Title:    StringSimilarity(Normalize(a.Title), Normalize(b.Title)),
		Location: LocationSimilarity(a, b),
		Date:     DateSimilarity(a.AppliedAt, b.AppliedAt),
	}
	r.Composite = CompanyWeight*r.Company +
		TitleWeight*r.Title +
		LocationWeight*r.Location +
		DateWeight*r.Date
	return r
}
