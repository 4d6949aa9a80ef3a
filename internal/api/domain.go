package api

import (
	"github.com/safenet-ai/safenet/internal/chat"
	"github.com/safenet-ai/safenet/internal/evidence"
	"github.com/safenet-ai/safenet/internal/prompts"
	"github.com/safenet-ai/safenet/internal/reports"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Reports  reports.System
	Evidence evidence.System
	Prompts  prompts.System
	Chat     chat.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	evidenceSystem := evidence.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
	)

	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	reportsSystem := reports.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		evidenceSystem,
		promptsSystem,
	)

	chatSystem := chat.New(runtime.Agent, runtime.Logger)

	return &Domain{
		Reports:  reportsSystem,
		Evidence: evidenceSystem,
		Prompts:  promptsSystem,
		Chat:     chatSystem,
	}
}
