package services

import (
	"errors"
	"fmt"

	"github.com/ALjabriOmars/SCSP/entity"
	"github.com/ALjabriOmars/SCSP/repository"

	"gorm.io/gorm"
)

// สถานะที่ authority ตั้งให้ task ได้
var taskStatuses = map[string]bool{
	"active":     true,
	"suspended":  true,
	"terminated": true,
}

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create opens a new task. Tasks always start "active".
func (s *TaskService) Create(description, department, resources, timeline string) (*entity.Task, error) {
	if description == "" || department == "" || resources == "" || timeline == "" {
		return nil, fmt.Errorf("%w: missing fields", ErrValidation)
	}

	task := &entity.Task{
		Description: description,
		Department:  department,
		Resources:   resources,
		Timeline:    timeline,
		Status:      "active",
	}
	if err := s.repo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns active and suspended tasks, newest first.
func (s *TaskService) List() ([]entity.Task, error) {
	return s.repo.FindCurrent()
}

// UpdateStatus switches a task between active and suspended, or terminates it.
// Termination deletes the row: a terminated task is gone, not a stored status.
// The returned flag reports whether the task was deleted.
func (s *TaskService) UpdateStatus(id uint, status string) (bool, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	if !taskStatuses[status] {
		return false, fmt.Errorf("%w: invalid status", ErrValidation)
	}

	if status == "terminated" {
		return true, s.repo.Delete(id)
	}
	return false, s.repo.UpdateStatus(id, status)
}
