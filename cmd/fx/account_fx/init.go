package account_fx

import (
	"go.uber.org/fx"

	"oncocare/internal/repositories"
	"oncocare/internal/services"
	"oncocare/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo() repositories.AccountRepository {
	return repositories.NewAccountRepository()
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens)
}
