package care_fx

import (
	"go.uber.org/fx"

	"oncocare/internal/config"
	"oncocare/internal/prompts"
	"oncocare/internal/safety"
	"oncocare/internal/services"
	"oncocare/pkg/llm"
	mem "oncocare/pkg/memcache"
)

var Module = fx.Provide(
	services.NewGuidanceService,
	services.NewNoteService,
	services.NewChatService,
	provideQuizService,
	provideCrisisFilter,
	services.NewMindcareService,
)

func provideQuizService(gateway llm.Gateway, registry *prompts.Registry, states mem.QuizStateStore, cfg *config.Config) services.QuizServiceInterface {
	return services.NewQuizService(gateway, registry, states, cfg.QuizStateTTL)
}

func provideCrisisFilter() *safety.CrisisFilter {
	return safety.NewCrisisFilter(safety.CrisisKeywords)
}
