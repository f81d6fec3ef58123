package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/health-pal-uit/health-pal-server-sub001/services"
)

var (
	ledgerSvc    *services.LedgerService
	intakeSvc    *services.IntakeService
	activitySvc  *services.ActivityLogService
	catalogSvc   *services.CatalogService
	challengeSvc *services.ChallengeService
	goalSvc      *services.GoalService
	summarySvc   *services.SummaryService
	hub          *services.RealtimeHub
)

// Init wires the service graph once at startup.
func Init(db *gorm.DB, rt *services.RealtimeHub) {
	ledgerSvc = services.NewLedgerService(db)
	intakeSvc = services.NewIntakeService(db, ledgerSvc)
	activitySvc = services.NewActivityLogService(db, ledgerSvc, services.NewEnergyCalculator(services.DefaultEnergyConfig()))
	catalogSvc = services.NewCatalogService(db)
	challengeSvc = services.NewChallengeService(db)
	goalSvc = services.NewGoalService(db, ledgerSvc)
	summarySvc = services.NewSummaryService(db)
	hub = rt
}

// statusFor maps the service error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrLedgerNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidActivityRecord),
		errors.Is(err, services.ErrInconsistentActivity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
