package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mohsinshafique7/clays-notes-backend/services"
	"github.com/mohsinshafique7/clays-notes-backend/utils"
)

type AccountController struct {
	accounts *services.AccountService
	logger   *zap.SugaredLogger
}

func NewAccountController(accounts *services.AccountService, logger *zap.SugaredLogger) *AccountController {
	return &AccountController{accounts: accounts, logger: logger}
}

type sleepEntryBody struct {
	SleepHours int    `json:"sleepHours" binding:"required,gte=1,lte=24"`
	Date       string `json:"date" binding:"required,dateformat,notfuture"`
}

type createAccountRequest struct {
	Name        string          `json:"name" binding:"required,accountname"`
	Gender      string          `json:"gender" binding:"required,oneof=male female other"`
	SleepRecord *sleepEntryBody `json:"sleepRecord" binding:"required"`
}

type updateAccountRequest struct {
	Name   string `json:"name" binding:"omitempty,accountname"`
	Gender string `json:"gender" binding:"omitempty,oneof=male female other"`
}

// Create is the create-or-update merge: a new name gets an account with one
// nested sleep record, an existing one gets an additional record for the
// given date.
func (ctl *AccountController) Create(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, _ := utils.ParseDate(req.SleepRecord.Date)

	result, err := ctl.accounts.SubmitSleepEntry(req.Name, req.Gender, date, req.SleepRecord.SleepHours)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	if result.Created {
		c.JSON(http.StatusCreated, gin.H{"message": "New Record Saved", "data": result.Account})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Record Updated For User %s", req.Name),
		"data":    result.Record,
	})
}

func (ctl *AccountController) FindAll(c *gin.Context) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, count, err := ctl.accounts.List(query.PerPage, query.CurrentPage)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": count})
}

func (ctl *AccountController) FindOne(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	account, err := ctl.accounts.Get(id)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"row": account})
}

func (ctl *AccountController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := ctl.accounts.UpdateAccount(id, req.Name, req.Gender)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Account %d updated successfully", id),
		"record":  account,
	})
}

func (ctl *AccountController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctl.accounts.Delete(id); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Account Id %d deleted successfully", id)})
}
