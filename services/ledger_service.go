package services

import (
	"time"

	"github.com/mohsinshafique7/clays-notes-backend/repositories"
)

// DailyHourLimit caps the recorded sleep per account per calendar date.
const DailyHourLimit = 24

// Reconciliation is the outcome of checking a proposed entry against the
// daily budget.
type Reconciliation struct {
	Accepted       bool
	AvailableHours int
}

// LedgerService decides whether a proposed sleep entry fits into the
// remaining daily budget. Both the create and the update path go through
// here so the 24h rule cannot diverge between them.
type LedgerService struct{}

func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// Reconcile sums the stored hours for (accountID, date), skipping
// excludeRecordID (0 for none), and accepts the proposal iff it fits the
// remaining capacity. Passing the record's own id on updates keeps it from
// counting against itself. Pure read + decision; the caller persists, and
// should hand in a transaction-bound repository so the sum and the write
// cannot interleave with a concurrent submission.
func (s *LedgerService) Reconcile(records repositories.SleepRecordRepository, accountID uint, date time.Time, proposedHours int, excludeRecordID uint) (Reconciliation, error) {
	saved, err := records.FindByAccountAndDate(accountID, date)
	if err != nil {
		return Reconciliation{}, err
	}

	totalSavedHours := 0
	for _, rec := range saved {
		if excludeRecordID != 0 && rec.ID == excludeRecordID {
			continue
		}
		totalSavedHours += rec.SleepHours
	}

	availableHours := DailyHourLimit - totalSavedHours
	return Reconciliation{
		Accepted:       proposedHours <= availableHours,
		AvailableHours: availableHours,
	}, nil
}
