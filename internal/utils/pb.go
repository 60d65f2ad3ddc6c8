package utils

import (
	"time"

	trackerv1 "github.com/adeolu-ojo/applytrack/gen/proto/tracker/v1"
	"github.com/adeolu-ojo/applytrack/internal/entity"
)

func ToPBJob(j *entity.Job) *trackerv1.Job {
	pb := &trackerv1.Job{
		Id:            j.ID.String(),
		UserId:        j.UserID.String(),
		Company:       j.Company,
		Title:         j.Title,
		City:          strOrEmpty(j.City),
		State:         strOrEmpty(j.State),
		Country:       strOrEmpty(j.Country),
		Status:        j.Status,
		IsDuplicate:   j.IsDuplicate,
		PlatformCount: int32(j.PlatformCount),
		Notes:         strOrEmpty(j.Notes),
		CreatedAt:     j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     j.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if j.AppliedAt != nil {
		pb.AppliedAt = j.AppliedAt.Format("2006-01-02")
	}
	if j.MergedIntoJobID != nil {
		pb.MergedIntoJobId = j.MergedIntoJobID.String()
	}
	return pb
}

func ToPBPlatform(p *entity.Platform) *trackerv1.Platform {
	return &trackerv1.Platform{
		Id:         p.ID.String(),
		JobId:      p.JobID.String(),
		Platform:   p.Platform,
		Url:        strOrEmpty(p.URL),
		ExternalId: strOrEmpty(p.ExternalID),
		Notes:      strOrEmpty(p.Notes),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSuggestion(p *entity.PendingSuggestion) *trackerv1.Suggestion {
	s := p.Suggestion
	pb := &trackerv1.Suggestion{
		Id:              s.ID.String(),
		JobId_1:         s.JobID1.String(),
		JobId_2:         s.JobID2.String(),
		CompanyScore:    s.CompanyScore,
		TitleScore:      s.TitleScore,
		LocationScore:   s.LocationScore,
		DateScore:       s.DateScore,
		SimilarityScore: s.SimilarityScore,
		Status:          s.Status,
	}
	if s.ResolvedAt != nil {
		pb.ResolvedAt = s.ResolvedAt.UTC().Format(time.RFC3339)
	}
	if p.Job1 != nil {
		pb.Job_1 = ToPBJob(p.Job1)
	}
	if p.Job2 != nil {
		pb.Job_2 = ToPBJob(p.Job2)
	}
	return pb
}

func ToPBScoredJob(s *entity.ScoredJob) *trackerv1.ScoredJob {
	return &trackerv1.ScoredJob{
		Job:             ToPBJob(s.Job),
		CompanyScore:    s.CompanyScore,
		TitleScore:      s.TitleScore,
		LocationScore:   s.LocationScore,
		DateScore:       s.DateScore,
		SimilarityScore: s.SimilarityScore,
	}
}

func ToPBContact(c *entity.Contact) *trackerv1.Contact {
	return &trackerv1.Contact{
		Id:        c.ID.String(),
		UserId:    c.UserID.String(),
		Name:      c.Name,
		Company:   strOrEmpty(c.Company),
		Email:     strOrEmpty(c.Email),
		Role:      strOrEmpty(c.Role),
		Notes:     strOrEmpty(c.Notes),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBUser(u *entity.User) *trackerv1.User {
	return &trackerv1.User{
		Id:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
