package models

import "time"

// SleepRecord is one entry of hours slept on a given date. Multiple rows may
// share (account_id, date); they are additive, capped at 24h/day by the
// ledger service.
type SleepRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SleepHours int       `gorm:"not null" json:"sleepHours"` // 1–24
	Date       time.Time `gorm:"type:date;index:idx_account_date;not null" json:"date"`
	AccountID  uint      `gorm:"index:idx_account_date;not null" json:"accountId"`
}
