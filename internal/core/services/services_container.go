package services

import (
	"time"

	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/utils/accounting"
)

// ContainerOption adjusts the wiring of NewServiceContainer.
type ContainerOption func(*containerSettings)

type containerSettings struct {
	clock func() time.Time
}

// WithClock makes every service stamp times from clock instead of time.Now.
func WithClock(clock func() time.Time) ContainerOption {
	return func(s *containerSettings) {
		s.clock = clock
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, options ...ContainerOption) *portssvc.ServiceContainer {
	settings := containerSettings{clock: time.Now}
	for _, option := range options {
		option(&settings)
	}

	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithSearchLimit(cfg.SearchLimit),
		WithAccountClock(settings.clock),
	)
	container.FiscalPeriod = NewFiscalPeriodService(
		repos.FiscalPeriodRepo,
		WithSingleOpenPeriod(cfg.EnforceSingleOpenPeriod),
		WithPeriodClock(settings.clock),
	)
	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.AccountRepo,
		repos.FiscalPeriodRepo,
		WithPageSize(cfg.PageSize),
		WithJournalClock(settings.clock),
	)
	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.AccountRepo,
		WithClassifier(accounting.NewClassifier(cfg.ResultClassification)),
		WithCapital(cfg.CapitalAmount),
	)
	container.Auth = NewAuthService(repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade      = (*accountService)(nil)
	_ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)
	_ portssvc.JournalSvcFacade      = (*journalService)(nil)
	_ portssvc.ReportingService      = (*reportingService)(nil)
)
