package repositories

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"oncocare/internal/models/domain_models"
)

type AccountRepository interface {
	// FindByEmail returns nil, nil when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain_models.User, error)
}

type accountRepository struct {
	users []domain_models.User
}

func NewAccountRepository() AccountRepository {
	return &accountRepository{users: seedUsers()}
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*domain_models.User, error) {
	user, ok := lo.Find(r.users, func(u domain_models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok {
		return nil, nil
	}
	return &user, nil
}
