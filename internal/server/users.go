package server

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	trackerv1 "github.com/adeolu-ojo/applytrack/gen/proto/tracker/v1"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/repository"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

type UsersService struct {
	trackerv1.UnimplementedUsersServiceServer
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewUsersService(userRepo repository.UserRepository, logger *slog.Logger) *UsersService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UsersService) CreateUser(ctx context.Context, req *trackerv1.CreateUserRequest) (*trackerv1.CreateUserResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, common.InvalidArgumentError("email must be a valid address")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	user, err := s.userRepo.Create(ctx, email, name)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	s.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	return &trackerv1.CreateUserResponse{User: utils.ToPBUser(user)}, nil
}

func (s *UsersService) GetUser(ctx context.Context, req *trackerv1.GetUserRequest) (*trackerv1.GetUserResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.GetUserResponse{User: utils.ToPBUser(user)}, nil
}
