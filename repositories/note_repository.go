package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
	"github.com/mohsinshafique7/clays-notes-backend/models"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *models.Note) error {
	if err := r.db.Create(note).Error; err != nil {
		return domain.NewStorageError("create note", err)
	}
	return nil
}

func (r *noteRepository) FindByID(id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNoteNotFound
	}
	if err != nil {
		return nil, domain.NewStorageError("find note", err)
	}
	return &note, nil
}

func (r *noteRepository) FindAll() ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Find(&notes).Error; err != nil {
		return nil, domain.NewStorageError("list notes", err)
	}
	return notes, nil
}

func (r *noteRepository) Update(note *models.Note) error {
	if err := r.db.Save(note).Error; err != nil {
		return domain.NewStorageError("update note", err)
	}
	return nil
}

func (r *noteRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Note{}, id)
	if res.Error != nil {
		return domain.NewStorageError("delete note", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
