package repository

import (
	"github.com/ALjabriOmars/SCSP/entity"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Create(task *entity.Task) error {
	return r.DB.Create(task).Error
}

func (r *TaskRepository) FindByID(id uint) (*entity.Task, error) {
	var task entity.Task
	if err := r.DB.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindCurrent returns active and suspended tasks, newest first.
// Terminated tasks never appear because termination deletes the row.
func (r *TaskRepository) FindCurrent() ([]entity.Task, error) {
	tasks := []entity.Task{}
	err := r.DB.Where("status IN ?", []string{"active", "suspended"}).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Task{}).Where("id = ?", id).Update("status", status).Error
}

func (r *TaskRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Task{}, id).Error
}
