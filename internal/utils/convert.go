package utils

import (
	"github.com/adeolu-ojo/applytrack/gen/ent"
	"github.com/adeolu-ojo/applytrack/internal/entity"
)

func ToJob(j *ent.Job) *entity.Job {
	if j == nil {
		return nil
	}
	return &entity.Job{
		ID:              j.ID,
		UserID:          j.UserID,
		Company:         j.Company,
		Title:           j.Title,
		City:            j.City,
		State:           j.State,
		Country:         j.Country,
		AppliedAt:       j.AppliedAt,
		Status:          j.Status,
		IsDuplicate:     j.IsDuplicate,
		MergedIntoJobID: j.MergedIntoJobID,
		PlatformCount:   j.PlatformCount,
		Notes:           j.Notes,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func ToJobs(rows []*ent.Job) []*entity.Job {
	out := make([]*entity.Job, len(rows))
	for i, j := range rows {
		out[i] = ToJob(j)
	}
	return out
}

func ToPlatform(p *ent.ApplicationPlatform) *entity.Platform {
	if p == nil {
		return nil
	}
	return &entity.Platform{
		ID:         p.ID,
		JobID:      p.JobID,
		Platform:   p.Platform,
		URL:        p.URL,
		ExternalID: p.ExternalID,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func ToSuggestion(s *ent.DuplicatePair) *entity.Suggestion {
	if s == nil {
		return nil
	}
	return &entity.Suggestion{
		ID:              s.ID,
		JobID1:          s.JobID1,
		JobID2:          s.JobID2,
		CompanyScore:    s.CompanyScore,
		TitleScore:      s.TitleScore,
		LocationScore:   s.LocationScore,
		DateScore:       s.DateScore,
		SimilarityScore: s.SimilarityScore,
		Status:          s.Status,
		ResolvedAt:      s.ResolvedAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func ToContact(c *ent.Contact) *entity.Contact {
	if c == nil {
		return nil
	}
	return &entity.Contact{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Role:      c.Role,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToUser(u *ent.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
