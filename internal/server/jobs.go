package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	trackerv1 "github.com/adeolu-ojo/applytrack/gen/proto/tracker/v1"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/export"
	"github.com/adeolu-ojo/applytrack/internal/imports"
	"github.com/adeolu-ojo/applytrack/internal/jobs"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

type JobsService struct {
	trackerv1.UnimplementedJobsServiceServer
	jobService    *jobs.Service
	importService *imports.Service
	exportService *export.Service
	logger        *slog.Logger
}

func NewJobsService(jobService *jobs.Service, importService *imports.Service, exportService *export.Service, logger *slog.Logger) *JobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsService{
		jobService:    jobService,
		importService: importService,
		exportService: exportService,
		logger:        logger,
	}
}

func (s *JobsService) CreateJob(ctx context.Context, req *trackerv1.CreateJobRequest) (*trackerv1.CreateJobResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	appliedAt, err := parseOptionalYMD("applied_at", req.GetAppliedAt())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	job, err := s.jobService.CreateJob(ctx, jobs.CreateJobRequest{
		UserID:    userID,
		Company:   req.GetCompany(),
		Title:     req.GetTitle(),
		City:      req.GetCity(),
		State:     req.GetState(),
		Country:   req.GetCountry(),
		AppliedAt: appliedAt,
		Status:    req.GetStatus(),
		Notes:     req.GetNotes(),
	})
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.CreateJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *JobsService) GetJob(ctx context.Context, req *trackerv1.GetJobRequest) (*trackerv1.GetJobResponse, error) {
	userID, jobID, err := parseUserAndJob(req.GetUserId(), req.GetJobId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	job, err := s.jobService.GetJob(ctx, userID, jobID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.GetJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *JobsService) ListJobs(ctx context.Context, req *trackerv1.ListJobsRequest) (*trackerv1.ListJobsResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	fromDate, err := parseOptionalYMD("from_date", req.GetFromDate())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	toDate, err := parseOptionalYMD("to_date", req.GetToDate())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	listed, err := s.jobService.ListJobs(ctx, jobs.ListJobsRequest{
		UserID:   userID,
		FromDate: fromDate,
		ToDate:   toDate,
	})
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	out := make([]*trackerv1.Job, 0, len(listed))
	for _, j := range listed {
		out = append(out, utils.ToPBJob(j))
	}
	return &trackerv1.ListJobsResponse{Jobs: out}, nil
}

func (s *JobsService) UpdateJob(ctx context.Context, req *trackerv1.UpdateJobRequest) (*trackerv1.UpdateJobResponse, error) {
	userID, jobID, err := parseUserAndJob(req.GetUserId(), req.GetJobId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	update := jobs.UpdateJobRequest{
		Company: req.Company,
		Title:   req.Title,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Status:  req.Status,
		Notes:   req.Notes,
	}
	if req.AppliedAt != nil {
		appliedAt, err := utils.ParseYMD(*req.AppliedAt)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("applied_at invalid (YYYY-MM-DD): %v", err)
		}
		update.AppliedAt = &appliedAt
	}

	job, err := s.jobService.UpdateJob(ctx, userID, jobID, update)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.UpdateJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *JobsService) AttachPlatform(ctx context.Context, req *trackerv1.AttachPlatformRequest) (*trackerv1.AttachPlatformResponse, error) {
	userID, jobID, err := parseUserAndJob(req.GetUserId(), req.GetJobId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	platform, err := s.jobService.AttachPlatform(ctx, jobs.AttachPlatformRequest{
		UserID:     userID,
		JobID:      jobID,
		Platform:   req.GetPlatform(),
		URL:        req.GetUrl(),
		ExternalID: req.GetExternalId(),
		Notes:      req.GetNotes(),
	})
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.AttachPlatformResponse{Platform: utils.ToPBPlatform(platform)}, nil
}

func (s *JobsService) ListPlatforms(ctx context.Context, req *trackerv1.ListPlatformsRequest) (*trackerv1.ListPlatformsResponse, error) {
	userID, jobID, err := parseUserAndJob(req.GetUserId(), req.GetJobId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	listed, err := s.jobService.ListPlatforms(ctx, userID, jobID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	out := make([]*trackerv1.Platform, 0, len(listed))
	for _, p := range listed {
		out = append(out, utils.ToPBPlatform(p))
	}
	return &trackerv1.ListPlatformsResponse{Platforms: out}, nil
}

func (s *JobsService) ImportJobs(ctx context.Context, req *trackerv1.ImportJobsRequest) (*trackerv1.ImportJobsResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	if len(req.GetPayload()) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}

	result, err := s.importService.ImportJobs(ctx, userID, req.GetPayload())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	resp := &trackerv1.ImportJobsResponse{Imported: int32(result.Imported)}
	for _, rowErr := range result.Errors {
		resp.Errors = append(resp.Errors, &trackerv1.ImportRowError{
			Index:   int32(rowErr.Index),
			Message: rowErr.Message,
		})
	}
	return resp, nil
}

func (s *JobsService) ExportJobs(ctx context.Context, req *trackerv1.ExportJobsRequest) (*trackerv1.ExportJobsResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	fromDate, err := parseOptionalYMD("from_date", req.GetFromDate())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	toDate, err := parseOptionalYMD("to_date", req.GetToDate())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	data, err := s.exportService.ExportJobsXLSX(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.ExportJobsResponse{Xlsx: data}, nil
}

func parseOptionalYMD(field, value string) (*time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	t, err := utils.ParseYMD(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s invalid (YYYY-MM-DD)", common.ErrValidation, field)
	}
	return &t, nil
}
