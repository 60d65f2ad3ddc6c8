package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/gen/ent"
	"github.com/adeolu-ojo/applytrack/gen/ent/user"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, email, name string) (*entity.User, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := r.client.User.Query().
		Where(user.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	return utils.ToUser(row), nil
}

func (r *userRepository) Create(ctx context.Context, email, name string) (*entity.User, error) {
	row, err := r.client.User.Create().
		SetEmail(email).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.ErrConflict
		}
		r.logger.Error("failed to create user", "email", email, "error", err)
		return nil, err
	}
	return utils.ToUser(row), nil
}
