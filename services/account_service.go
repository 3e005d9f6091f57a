package services

import (
	"strings"
	"time"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
	"github.com/mohsinshafique7/clays-notes-backend/models"
	"github.com/mohsinshafique7/clays-notes-backend/repositories"
	"github.com/mohsinshafique7/clays-notes-backend/utils"
)

// SubmitResult tells the caller which branch the merge workflow took:
// a brand-new account (with its first record nested) or one more record
// appended to an existing account's day.
type SubmitResult struct {
	Created bool
	Account *models.Account
	Record  *models.SleepRecord
}

// AccountRow is the listing shape: display-cased name plus how many sleep
// entries the account owns.
type AccountRow struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	NoOfEntries int    `json:"noOfEntries"`
}

type AccountService struct {
	accounts repositories.AccountRepository
	records  repositories.SleepRecordRepository
	ledger   *LedgerService
}

func NewAccountService(accounts repositories.AccountRepository, records repositories.SleepRecordRepository, ledger *LedgerService) *AccountService {
	return &AccountService{accounts: accounts, records: records, ledger: ledger}
}

// SubmitSleepEntry is the create-or-update merge. Name and gender are
// normalized before lookup, so stored names are always lowercase and the
// lookup stays case-insensitive. A missing name creates the account with
// exactly one nested record; an existing one gets an additional record for
// that date, subject to the daily budget.
func (s *AccountService) SubmitSleepEntry(name, gender string, date time.Time, sleepHours int) (*SubmitResult, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	gender = strings.ToLower(strings.TrimSpace(gender))

	existing, err := s.accounts.FindByName(name)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		account := &models.Account{
			Name:   name,
			Gender: gender,
			SleepRecords: []models.SleepRecord{
				{Date: date, SleepHours: sleepHours},
			},
		}
		if err := s.accounts.Create(account); err != nil {
			return nil, err
		}
		return &SubmitResult{Created: true, Account: account, Record: &account.SleepRecords[0]}, nil
	}

	var record *models.SleepRecord
	err = s.records.InTransaction(func(tx repositories.SleepRecordRepository) error {
		rec, err := s.ledger.Reconcile(tx, existing.ID, date, sleepHours, 0)
		if err != nil {
			return err
		}
		if !rec.Accepted {
			return &domain.CapacityExceededError{Date: utils.DateKey(date), AvailableHours: rec.AvailableHours}
		}
		record = &models.SleepRecord{AccountID: existing.ID, Date: date, SleepHours: sleepHours}
		return tx.Create(record)
	})
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Created: false, Account: existing, Record: record}, nil
}

func (s *AccountService) List(perPage, currentPage int) ([]AccountRow, int64, error) {
	offset := utils.PageOffset(perPage, currentPage)
	accounts, count, err := s.accounts.FindAll(offset, perPage)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]AccountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, AccountRow{
			ID:          a.ID,
			Name:        utils.DisplayName(a.Name),
			Gender:      a.Gender,
			NoOfEntries: len(a.SleepRecords),
		})
	}
	return rows, count, nil
}

func (s *AccountService) Get(id uint) (*models.Account, error) {
	return s.accounts.FindByID(id)
}

// UpdateAccount merges the non-empty fields onto the stored account.
func (s *AccountService) UpdateAccount(id uint, name, gender string) (*models.Account, error) {
	account, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		account.Name = strings.ToLower(strings.TrimSpace(name))
	}
	if gender != "" {
		account.Gender = strings.ToLower(strings.TrimSpace(gender))
	}
	if err := s.accounts.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Delete(id uint) error {
	return s.accounts.Delete(id)
}
