package models

// Account is a named sleeper. Names are stored lowercased so lookups stay
// case-insensitive without a functional index.
type Account struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"uniqueIndex;not null" json:"name"`
	Gender       string        `gorm:"not null" json:"gender"`
	SleepRecords []SleepRecord `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"sleepRecord,omitempty"`
}
