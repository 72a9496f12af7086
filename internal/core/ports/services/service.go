package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the presentation layer.
type ServiceContainer struct {
	Client    ClientSvcFacade
	Deposit   DepositSvcFacade
	Account   AccountSvcFacade
	Reporting ReportingSvcFacade
}
