package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"oncocare/internal/models/domain_models"
	"oncocare/internal/models/request_models"
	"oncocare/internal/models/response_models"
	"oncocare/internal/repositories"
	"oncocare/pkg/utils"
)

// DemoPatientID is assigned to patients created on first login.
const DemoPatientID = "patient-demo"

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

// Login issues a session token for email. Unknown emails get a throwaway
// demo user; the password is not checked.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {
	startTime := time.Now()

	email := strings.TrimSpace(request.Email)
	if email == "" {
		return response_models.LoginResponse{}, utils.ErrEmailRequired
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.LoginResponse{}, err
	}
	if account == nil {
		demo := demoUser(email)
		account = &demo
	}

	token, err := a.tokens.CreateToken(utils.Claims{
		UserID:    account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		PatientID: account.PatientID,
	})
	if err != nil {
		return response_models.LoginResponse{}, err
	}

	log.Printf("[INFO] login for %s (%s) took %s", account.Email, account.Role, time.Since(startTime))
	return response_models.LoginResponse{Token: token, User: *account}, nil
}

func demoUser(email string) domain_models.User {
	lower := strings.ToLower(email)
	name, _, _ := strings.Cut(email, "@")

	user := domain_models.User{
		ID:    "user-" + uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if strings.Contains(lower, "dr.") || strings.Contains(lower, "clinician") {
		user.Role = domain_models.RoleClinician
	} else {
		user.Role = domain_models.RolePatient
		user.PatientID = DemoPatientID
	}
	return user
}
