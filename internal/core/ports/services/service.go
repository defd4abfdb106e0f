package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the CLI commands.
type ServiceContainer struct {
	Account      AccountSvcFacade
	FiscalPeriod FiscalPeriodSvcFacade
	Journal      JournalSvcFacade
	Reporting    ReportingService
	Auth         AuthSvc
}
