package services

import (
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)

	// The saving service also serves balance queries since both work off the
	// same transaction history.
	savingSvc := NewSavingService(repos.TransactionRepo, repos.UserRepo)
	container.Saving = savingSvc
	container.Balance = savingSvc

	container.Withdrawal = NewWithdrawalService(repos.TransactionRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.UserRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.UserSvcFacade       = (*userService)(nil)
	_ portssvc.SavingSvcFacade     = (*savingService)(nil)
	_ portssvc.BalanceSvcFacade    = (*savingService)(nil)
	_ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)
	_ portssvc.ReportingService    = (*reportingService)(nil)
)
