package constants

import (
	"strings"
)

type Platform string

const (
	LinkedIn      Platform = "linkedin"
	Indeed        Platform = "indeed"
	Glassdoor     Platform = "glassdoor"
	ZipRecruiter  Platform = "ziprecruiter"
	Monster       Platform = "monster"
	Dice          Platform = "dice"
	Wellfound     Platform = "wellfound"
	Greenhouse    Platform = "greenhouse"
	Lever         Platform = "lever"
	CompanyDirect Platform = "company_website"
	Referral      Platform = "referral"
	OtherPlatform Platform = "other"
)

var allPlatforms = []Platform{
	LinkedIn,
	Indeed,
	Glassdoor,
	ZipRecruiter,
	Monster,
	Dice,
	Wellfound,
	Greenhouse,
	Lever,
	CompanyDirect,
	Referral,
	OtherPlatform,
}

func PlatformsAsStringSlice() []string {
	result := make([]string, len(allPlatforms))
	for i, p := range allPlatforms {
		result[i] = string(p)
	}
	return result
}

// CanonicalizePlatform maps free-form input onto a known platform.
// The second return reports whether the input was recognized; callers
// reject unrecognized platforms rather than storing them.
func CanonicalizePlatform(input string) (Platform, bool) {
	if input == "" {
		return OtherPlatform, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Platform{
		"linked in":     LinkedIn,
		"angellist":     Wellfound,
		"angel.co":      Wellfound,
		"zip recruiter": ZipRecruiter,
		"company site":  CompanyDirect,
		"career page":   CompanyDirect,
		"careers page":  CompanyDirect,
		"direct":        CompanyDirect,
		"referred":      Referral,
	}

	if p, ok := synonyms[normalized]; ok {
		return p, true
	}

	for _, p := range allPlatforms {
		if normalized == string(p) {
			return p, true
		}
	}

	return OtherPlatform, false
}
