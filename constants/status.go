package constants

// SuggestionStatus is the canonical status for rows in duplicate_pairs.
type SuggestionStatus string

// Stable values (store these exact strings in DB).
const (
	SuggestionPending   SuggestionStatus = "PENDING"   // awaiting user resolution
	SuggestionMerged    SuggestionStatus = "MERGED"    // terminal: jobs were consolidated
	SuggestionDismissed SuggestionStatus = "DISMISSED" // terminal: user rejected the match
)

func SuggestionStatuses() []string {
	return []string{
		string(SuggestionPending),
		string(SuggestionMerged),
		string(SuggestionDismissed),
	}
}

// ApplicationStatus tracks where a job application sits in the funnel.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusScreening ApplicationStatus = "SCREENING"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffer     ApplicationStatus = "OFFER"
	StatusRejected  ApplicationStatus = "REJECTED"
	StatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

func ApplicationStatuses() []string {
	return []string{
		string(StatusApplied),
		string(StatusScreening),
		string(StatusInterview),
		string(StatusOffer),
		string(StatusRejected),
		string(StatusWithdrawn),
	}
}
