package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
	"github.com/mohsinshafique7/clays-notes-backend/models"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return domain.NewStorageError("create account", err)
	}
	return nil
}

func (r *accountRepository) FindByID(id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, domain.NewStorageError("find account", err)
	}
	return &account, nil
}

func (r *accountRepository) FindByName(name string) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("name = ?", name).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("find account by name", err)
	}
	return &account, nil
}

func (r *accountRepository) FindAll(offset, limit int) ([]models.Account, int64, error) {
	var accounts []models.Account
	var count int64
	if err := r.db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return nil, 0, domain.NewStorageError("count accounts", err)
	}
	err := r.db.
		Preload("SleepRecords").
		Offset(offset).
		Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, 0, domain.NewStorageError("list accounts", err)
	}
	return accounts, count, nil
}

func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return domain.NewStorageError("update account", err)
	}
	return nil
}

// Delete removes the account's sleep records before the account itself so
// the cascade holds even on stores migrated without the FK constraint.
func (r *accountRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.SleepRecord{}).Error; err != nil {
			return domain.NewStorageError("delete account records", err)
		}
		res := tx.Delete(&models.Account{}, id)
		if res.Error != nil {
			return domain.NewStorageError("delete account", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}
		return nil
	})
}
