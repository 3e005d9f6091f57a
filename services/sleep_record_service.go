package services

import (
	"time"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
	"github.com/mohsinshafique7/clays-notes-backend/models"
	"github.com/mohsinshafique7/clays-notes-backend/repositories"
	"github.com/mohsinshafique7/clays-notes-backend/utils"
)

// SleepRecordPatch carries the fields an update may change; nil means keep
// the stored value.
type SleepRecordPatch struct {
	SleepHours *int
	Date       *time.Time
	AccountID  *uint
}

type SleepRecordService struct {
	records repositories.SleepRecordRepository
	ledger  *LedgerService
}

func NewSleepRecordService(records repositories.SleepRecordRepository, ledger *LedgerService) *SleepRecordService {
	return &SleepRecordService{records: records, ledger: ledger}
}

// Create inserts one more entry for (accountID, date) if the day still has
// room. The sum and the insert share one transaction.
func (s *SleepRecordService) Create(accountID uint, date time.Time, sleepHours int) (*models.SleepRecord, error) {
	var record *models.SleepRecord
	err := s.records.InTransaction(func(tx repositories.SleepRecordRepository) error {
		rec, err := s.ledger.Reconcile(tx, accountID, date, sleepHours, 0)
		if err != nil {
			return err
		}
		if !rec.Accepted {
			return &domain.CapacityExceededError{Date: utils.DateKey(date), AvailableHours: rec.AvailableHours}
		}
		record = &models.SleepRecord{AccountID: accountID, Date: date, SleepHours: sleepHours}
		return tx.Create(record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Update merges the patch onto the stored record and re-runs reconciliation
// against the merged account/date, excluding the record's own id so it does
// not count against itself. A rejected patch leaves the row untouched.
func (s *SleepRecordService) Update(id uint, patch SleepRecordPatch) (*models.SleepRecord, error) {
	record, err := s.records.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.SleepHours != nil {
		record.SleepHours = *patch.SleepHours
	}
	if patch.Date != nil {
		record.Date = *patch.Date
	}
	if patch.AccountID != nil {
		record.AccountID = *patch.AccountID
	}

	err = s.records.InTransaction(func(tx repositories.SleepRecordRepository) error {
		rec, err := s.ledger.Reconcile(tx, record.AccountID, record.Date, record.SleepHours, record.ID)
		if err != nil {
			return err
		}
		if !rec.Accepted {
			return &domain.CapacityExceededError{Date: utils.DateKey(record.Date), AvailableHours: rec.AvailableHours}
		}
		return tx.Update(record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *SleepRecordService) Get(id uint) (*models.SleepRecord, error) {
	return s.records.FindByID(id)
}

func (s *SleepRecordService) List(perPage, currentPage int) ([]models.SleepRecord, int64, error) {
	return s.records.FindAll(utils.PageOffset(perPage, currentPage), perPage)
}

func (s *SleepRecordService) Delete(id uint) error {
	return s.records.Delete(id)
}
