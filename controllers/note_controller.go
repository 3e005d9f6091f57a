package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mohsinshafique7/clays-notes-backend/services"
)

type NoteController struct {
	notes  *services.NoteService
	logger *zap.SugaredLogger
}

func NewNoteController(notes *services.NoteService, logger *zap.SugaredLogger) *NoteController {
	return &NoteController{notes: notes, logger: logger}
}

type createNoteRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (ctl *NoteController) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := ctl.notes.Create(req.Title, req.Description)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New Record Saved", "data": note})
}

func (ctl *NoteController) FindAll(c *gin.Context) {
	notes, err := ctl.notes.List()
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (ctl *NoteController) FindOne(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	note, err := ctl.notes.Get(id)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"row": note})
}

func (ctl *NoteController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := ctl.notes.Update(id, req.Title, req.Description)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Note %d updated successfully", id),
		"record":  note,
	})
}

func (ctl *NoteController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctl.notes.Delete(id); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Note Id %d deleted successfully", id)})
}
