package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"lark/internal/core/domain"
	"lark/internal/core/port"
)

// SearchLimit caps the number of users returned by an email search.
const SearchLimit = 10

type UserUseCase struct {
	users  port.UserStore
	logger *slog.Logger
}

func NewUserUseCase(users port.UserStore, logger *slog.Logger) *UserUseCase {
	return &UserUseCase{users: users, logger: logger}
}

// GetUser returns the user or domain.ErrNotFound.
func (u *UserUseCase) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := u.users.GetUser(ctx, id)
	if err != nil {
		u.logger.Error("get user", slog.String("user_id", id.String()), slog.Any("error", err))
		return nil, &domain.QueryError{Op: "user", Err: err}
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// SearchUsers finds users whose email contains query. A blank query
// returns no users and makes no lookup.
func (u *UserUseCase) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.User{}, nil
	}
	users, err := u.users.SearchUsersByEmail(ctx, query, SearchLimit)
	if err != nil {
		u.logger.Error("search users", slog.String("query", query), slog.Any("error", err))
		return nil, &domain.QueryError{Op: "users", Err: err}
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
