package memcache_fx

import (
	"go.uber.org/fx"

	mem "oncocare/pkg/memcache"
)

var Module = fx.Provide(provideQuizStateStore)

func provideQuizStateStore() mem.QuizStateStore {
	return mem.NewQuizStates()
}
