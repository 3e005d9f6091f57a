package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
	"github.com/mohsinshafique7/clays-notes-backend/models"
)

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Create(record *models.SleepRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return domain.NewStorageError("create sleep record", err)
	}
	return nil
}

func (r *sleepRecordRepository) FindByID(id uint) (*models.SleepRecord, error) {
	var record models.SleepRecord
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, domain.NewStorageError("find sleep record", err)
	}
	return &record, nil
}

func (r *sleepRecordRepository) FindByAccountAndDate(accountID uint, date time.Time) ([]models.SleepRecord, error) {
	var records []models.SleepRecord
	err := r.db.
		Where("account_id = ? AND date = ?", accountID, date).
		Find(&records).Error
	if err != nil {
		return nil, domain.NewStorageError("find sleep records by date", err)
	}
	return records, nil
}

func (r *sleepRecordRepository) FindAll(offset, limit int) ([]models.SleepRecord, int64, error) {
	var records []models.SleepRecord
	var count int64
	if err := r.db.Model(&models.SleepRecord{}).Count(&count).Error; err != nil {
		return nil, 0, domain.NewStorageError("count sleep records", err)
	}
	err := r.db.
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, domain.NewStorageError("list sleep records", err)
	}
	return records, count, nil
}

func (r *sleepRecordRepository) FindSince(accountID uint, since time.Time) ([]models.SleepRecord, error) {
	var records []models.SleepRecord
	err := r.db.
		Where("account_id = ? AND date >= ?", accountID, since).
		Find(&records).Error
	if err != nil {
		return nil, domain.NewStorageError("find sleep records since date", err)
	}
	return records, nil
}

func (r *sleepRecordRepository) Update(record *models.SleepRecord) error {
	if err := r.db.Save(record).Error; err != nil {
		return domain.NewStorageError("update sleep record", err)
	}
	return nil
}

func (r *sleepRecordRepository) Delete(id uint) error {
	res := r.db.Delete(&models.SleepRecord{}, id)
	if res.Error != nil {
		return domain.NewStorageError("delete sleep record", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *sleepRecordRepository) InTransaction(fn func(SleepRecordRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&sleepRecordRepository{db: tx})
	})
}
