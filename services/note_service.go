package services

import (
	"strings"

	"github.com/mohsinshafique7/clays-notes-backend/models"
	"github.com/mohsinshafique7/clays-notes-backend/repositories"
)

type NoteService struct {
	notes repositories.NoteRepository
}

func NewNoteService(notes repositories.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) Create(title, description string) (*models.Note, error) {
	note := &models.Note{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if err := s.notes.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List() ([]models.Note, error) {
	return s.notes.FindAll()
}

func (s *NoteService) Get(id uint) (*models.Note, error) {
	return s.notes.FindByID(id)
}

// Update merges the non-empty fields onto the stored note.
func (s *NoteService) Update(id uint, title, description string) (*models.Note, error) {
	note, err := s.notes.FindByID(id)
	if err != nil {
		return nil, err
	}
	if title != "" {
		note.Title = strings.TrimSpace(title)
	}
	if description != "" {
		note.Description = strings.TrimSpace(description)
	}
	if err := s.notes.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(id uint) error {
	return s.notes.Delete(id)
}
