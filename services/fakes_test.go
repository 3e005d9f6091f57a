package services_test

import (
	"time"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
	"github.com/mohsinshafique7/clays-notes-backend/models"
	"github.com/mohsinshafique7/clays-notes-backend/repositories"
	"github.com/mohsinshafique7/clays-notes-backend/utils"
)

// fakeRecordRepo keeps records in insertion order, like rows without an
// ORDER BY come back from the store.
type fakeRecordRepo struct {
	rows    []*models.SleepRecord
	nextID  uint
	writes  int
	failErr error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{nextID: 1}
}

func (f *fakeRecordRepo) Create(record *models.SleepRecord) error {
	if f.failErr != nil {
		return f.failErr
	}
	record.ID = f.nextID
	f.nextID++
	stored := *record
	f.rows = append(f.rows, &stored)
	f.writes++
	return nil
}

func (f *fakeRecordRepo) FindByID(id uint) (*models.SleepRecord, error) {
	for _, r := range f.rows {
		if r.ID == id {
			rec := *r
			return &rec, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (f *fakeRecordRepo) FindByAccountAndDate(accountID uint, date time.Time) ([]models.SleepRecord, error) {
	var out []models.SleepRecord
	for _, r := range f.rows {
		if r.AccountID == accountID && utils.DateKey(r.Date) == utils.DateKey(date) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) FindAll(offset, limit int) ([]models.SleepRecord, int64, error) {
	total := int64(len(f.rows))
	if offset < 0 {
		offset = 0
	}
	if offset >= len(f.rows) {
		return []models.SleepRecord{}, total, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	out := make([]models.SleepRecord, 0, end-offset)
	for _, r := range f.rows[offset:end] {
		out = append(out, *r)
	}
	return out, total, nil
}

func (f *fakeRecordRepo) FindSince(accountID uint, since time.Time) ([]models.SleepRecord, error) {
	var out []models.SleepRecord
	for _, r := range f.rows {
		if r.AccountID == accountID && !r.Date.Before(since) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(record *models.SleepRecord) error {
	for i, r := range f.rows {
		if r.ID == record.ID {
			stored := *record
			f.rows[i] = &stored
			f.writes++
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (f *fakeRecordRepo) Delete(id uint) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			f.writes++
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (f *fakeRecordRepo) InTransaction(fn func(repositories.SleepRecordRepository) error) error {
	return fn(f)
}

type fakeAccountRepo struct {
	rows    []*models.Account
	nextID  uint
	records *fakeRecordRepo
}

func newFakeAccountRepo(records *fakeRecordRepo) *fakeAccountRepo {
	return &fakeAccountRepo{nextID: 1, records: records}
}

func (f *fakeAccountRepo) Create(account *models.Account) error {
	account.ID = f.nextID
	f.nextID++
	for i := range account.SleepRecords {
		account.SleepRecords[i].AccountID = account.ID
		if err := f.records.Create(&account.SleepRecords[i]); err != nil {
			return err
		}
	}
	stored := *account
	f.rows = append(f.rows, &stored)
	return nil
}

func (f *fakeAccountRepo) FindByID(id uint) (*models.Account, error) {
	for _, a := range f.rows {
		if a.ID == id {
			acc := *a
			return &acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindByName(name string) (*models.Account, error) {
	for _, a := range f.rows {
		if a.Name == name {
			acc := *a
			return &acc, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindAll(offset, limit int) ([]models.Account, int64, error) {
	total := int64(len(f.rows))
	if offset >= len(f.rows) {
		return []models.Account{}, total, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	out := make([]models.Account, 0, end-offset)
	for _, a := range f.rows[offset:end] {
		acc := *a
		acc.SleepRecords = nil
		for _, r := range f.records.rows {
			if r.AccountID == a.ID {
				acc.SleepRecords = append(acc.SleepRecords, *r)
			}
		}
		out = append(out, acc)
	}
	return out, total, nil
}

func (f *fakeAccountRepo) Update(account *models.Account) error {
	for i, a := range f.rows {
		if a.ID == account.ID {
			stored := *account
			f.rows[i] = &stored
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (f *fakeAccountRepo) Delete(id uint) error {
	for i, a := range f.rows {
		if a.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			kept := f.records.rows[:0]
			for _, r := range f.records.rows {
				if r.AccountID != id {
					kept = append(kept, r)
				}
			}
			f.records.rows = kept
			return nil
		}
	}
	return domain.ErrAccountNotFound
}
