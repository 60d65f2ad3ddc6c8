package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adeolu-ojo/applytrack/constants"
)

func TestCanonicalizePlatform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  constants.Platform
		ok    bool
	}{
		{name: "exact match", input: "linkedin", want: constants.LinkedIn, ok: true},
		{name: "case insensitive", input: "LinkedIn", want: constants.LinkedIn, ok: true},
		{name: "surrounding whitespace", input: "  indeed  ", want: constants.Indeed, ok: true},
		{name: "synonym", input: "linked in", want: constants.LinkedIn, ok: true},
		{name: "synonym angellist", input: "angellist", want: constants.Wellfound, ok: true},
		{name: "synonym career page", input: "Careers Page", want: constants.CompanyDirect, ok: true},
		{name: "other is a real platform", input: "other", want: constants.OtherPlatform, ok: true},
		{name: "unrecognized is rejected", input: "craigslist", want: constants.OtherPlatform, ok: false},
		{name: "empty is rejected", input: "", want: constants.OtherPlatform, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := constants.CanonicalizePlatform(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
