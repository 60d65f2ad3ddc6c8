package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	trackerv1 "github.com/adeolu-ojo/applytrack/gen/proto/tracker/v1"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/dedup"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

type DedupService struct {
	trackerv1.UnimplementedDedupServiceServer
	detector *dedup.Detector
	merger   *dedup.Merger
	logger   *slog.Logger
}

func NewDedupService(detector *dedup.Detector, merger *dedup.Merger, logger *slog.Logger) *DedupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DedupService{
		detector: detector,
		merger:   merger,
		logger:   logger,
	}
}

func (s *DedupService) FindDuplicates(ctx context.Context, req *trackerv1.FindDuplicatesRequest) (*trackerv1.FindDuplicatesResponse, error) {
	userID, jobID, err := parseUserAndJob(req.GetUserId(), req.GetJobId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	matches, err := s.detector.FindPotentialDuplicates(ctx, userID, jobID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	out := make([]*trackerv1.ScoredJob, 0, len(matches))
	for _, m := range matches {
		out = append(out, utils.ToPBScoredJob(m))
	}
	return &trackerv1.FindDuplicatesResponse{Matches: out}, nil
}

func (s *DedupService) ListSuggestions(ctx context.Context, req *trackerv1.ListSuggestionsRequest) (*trackerv1.ListSuggestionsResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	pending, err := s.detector.ListPending(ctx, userID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	out := make([]*trackerv1.Suggestion, 0, len(pending))
	for _, p := range pending {
		out = append(out, utils.ToPBSuggestion(p))
	}
	return &trackerv1.ListSuggestionsResponse{Suggestions: out}, nil
}

func (s *DedupService) DismissSuggestion(ctx context.Context, req *trackerv1.DismissSuggestionRequest) (*trackerv1.DismissSuggestionResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	suggestionID, err := common.ParseUUID("suggestion_id", req.GetSuggestionId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	if err := s.detector.Dismiss(ctx, userID, suggestionID); err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.DismissSuggestionResponse{}, nil
}

func (s *DedupService) MergeJobs(ctx context.Context, req *trackerv1.MergeJobsRequest) (*trackerv1.MergeJobsResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	masterID, err := common.ParseUUID("master_job_id", req.GetMasterJobId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	duplicateIDs := make([]uuid.UUID, 0, len(req.GetDuplicateJobIds()))
	for _, raw := range req.GetDuplicateJobIds() {
		id, err := common.ParseUUID("duplicate_job_ids", raw)
		if err != nil {
			return nil, common.ToGRPC(err)
		}
		duplicateIDs = append(duplicateIDs, id)
	}

	summary, err := s.merger.Merge(ctx, userID, masterID, duplicateIDs)
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	resp := &trackerv1.MergeJobsResponse{
		MasterJobId:   summary.MasterJobID.String(),
		PlatformCount: int32(summary.PlatformCount),
		MergedAt:      summary.MergedAt.UTC().Format(time.RFC3339),
	}
	for _, id := range summary.MergedJobIDs {
		resp.MergedJobIds = append(resp.MergedJobIds, id.String())
	}
	return resp, nil
}
