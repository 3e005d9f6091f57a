package services

import (
	"github.com/mohsinshafique7/clays-notes-backend/repositories"
	"github.com/mohsinshafique7/clays-notes-backend/utils"
)

// DailySummary is one per-date bucket of summed hours.
type DailySummary struct {
	Date       string `json:"date"`
	TotalHours int    `json:"totalHours"`
}

type ReportService struct {
	records repositories.SleepRecordRepository
}

func NewReportService(records repositories.SleepRecordRepository) *ReportService {
	return &ReportService{records: records}
}

// LastNDays groups the account's records from the past n days (default 7)
// by calendar date and sums the hours per date. Keys are normalized to
// YYYY-MM-DD so formatting differences cannot split a day into two buckets.
// Buckets appear in first-occurrence order of the source rows; callers
// wanting chronological output sort the result themselves.
func (s *ReportService) LastNDays(accountID uint, n int) ([]DailySummary, error) {
	if n <= 0 {
		n = 7
	}
	records, err := s.records.FindSince(accountID, utils.DaysAgo(n))
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(records))
	rows := make([]DailySummary, 0, len(records))
	for _, rec := range records {
		key := utils.DateKey(rec.Date)
		if i, ok := index[key]; ok {
			rows[i].TotalHours += rec.SleepHours
			continue
		}
		index[key] = len(rows)
		rows = append(rows, DailySummary{Date: key, TotalHours: rec.SleepHours})
	}
	return rows, nil
}
