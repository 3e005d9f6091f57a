// Package repositories holds the persistence ports the services depend on
// and their GORM implementations. Services never touch *gorm.DB directly.
package repositories

import (
	"time"

	"github.com/mohsinshafique7/clays-notes-backend/models"
)

type AccountRepository interface {
	// Create persists the account along with any nested sleep records.
	Create(account *models.Account) error
	FindByID(id uint) (*models.Account, error)
	// FindByName looks up a stored (normalized) name. A missing account is
	// (nil, nil), not an error; the merge workflow branches on it.
	FindByName(name string) (*models.Account, error)
	FindAll(offset, limit int) ([]models.Account, int64, error)
	Update(account *models.Account) error
	// Delete removes the account and all of its sleep records in one
	// transaction.
	Delete(id uint) error
}

type SleepRecordRepository interface {
	Create(record *models.SleepRecord) error
	FindByID(id uint) (*models.SleepRecord, error)
	FindByAccountAndDate(accountID uint, date time.Time) ([]models.SleepRecord, error)
	FindAll(offset, limit int) ([]models.SleepRecord, int64, error)
	// FindSince returns all records for the account with date >= since.
	FindSince(accountID uint, since time.Time) ([]models.SleepRecord, error)
	Update(record *models.SleepRecord) error
	Delete(id uint) error
	// InTransaction runs fn against a repository bound to a single database
	// transaction, so a reconcile-then-persist sequence cannot interleave
	// with its own reads.
	InTransaction(fn func(SleepRecordRepository) error) error
}

type NoteRepository interface {
	Create(note *models.Note) error
	FindByID(id uint) (*models.Note, error)
	FindAll() ([]models.Note, error)
	Update(note *models.Note) error
	Delete(id uint) error
}
