package services

import "github.com/health-pal-uit/health-pal-server-sub001/models"

type ledgerEventDeps struct {
	rt *RealtimeHub
}

var _ledgerEvents ledgerEventDeps

func InitLedgerEvents(rt *RealtimeHub) {
	_ledgerEvents = ledgerEventDeps{rt: rt}
}

// EmitLedgerUpdated pushes the recomputed ledger to the user's open
// connections. Safe to call anywhere; a no-op until InitLedgerEvents runs.
func EmitLedgerUpdated(userID uint, ledger *models.DailyLedger) {
	if _ledgerEvents.rt == nil {
		return
	}
	_ledgerEvents.rt.Broadcast(userID, map[string]any{
		"kind":   "ledger.updated",
		"ledger": ledger,
	})
}
