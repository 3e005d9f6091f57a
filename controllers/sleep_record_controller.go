package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mohsinshafique7/clays-notes-backend/services"
	"github.com/mohsinshafique7/clays-notes-backend/utils"
)

type SleepRecordController struct {
	records *services.SleepRecordService
	reports *services.ReportService
	logger  *zap.SugaredLogger
}

func NewSleepRecordController(records *services.SleepRecordService, reports *services.ReportService, logger *zap.SugaredLogger) *SleepRecordController {
	return &SleepRecordController{records: records, reports: reports, logger: logger}
}

type createSleepRecordRequest struct {
	AccountID  uint   `json:"accountId" binding:"required"`
	Date       string `json:"date" binding:"required,dateformat,notfuture"`
	SleepHours int    `json:"sleepHours" binding:"required,gte=1,lte=24"`
}

type updateSleepRecordRequest struct {
	AccountID  *uint   `json:"accountId" binding:"omitempty,gt=0"`
	Date       *string `json:"date" binding:"omitempty,dateformat,notfuture"`
	SleepHours *int    `json:"sleepHours" binding:"omitempty,gte=1,lte=24"`
}

func (ctl *SleepRecordController) Create(c *gin.Context) {
	var req createSleepRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, _ := utils.ParseDate(req.Date)

	record, err := ctl.records.Create(req.AccountID, date, req.SleepHours)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New Record Saved", "new_record": record})
}

func (ctl *SleepRecordController) FindAll(c *gin.Context) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, count, err := ctl.records.List(query.PerPage, query.CurrentPage)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": count})
}

// LastSevenDays answers the per-date aggregation for the account's past
// week.
func (ctl *SleepRecordController) LastSevenDays(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rows, err := ctl.reports.LastNDays(id, 7)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (ctl *SleepRecordController) FindOne(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	record, err := ctl.records.Get(id)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"row": record})
}

func (ctl *SleepRecordController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateSleepRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := services.SleepRecordPatch{
		SleepHours: req.SleepHours,
		AccountID:  req.AccountID,
	}
	if req.Date != nil {
		date, _ := utils.ParseDate(*req.Date)
		patch.Date = &date
	}

	record, err := ctl.records.Update(id, patch)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Sleep Record for %d updated successfully", id),
		"record":  record,
	})
}

func (ctl *SleepRecordController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctl.records.Delete(id); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Sleep Record %d deleted successfully", id)})
}
