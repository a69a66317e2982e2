package repository

import (
	"github.com/ALjabriOmars/SCSP/entity"

	"gorm.io/gorm"
)

// IssueRepository รับผิดชอบการคุยกับตาราง issues ใน DB เท่านั้น
type IssueRepository struct {
	DB *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{DB: db}
}

func (r *IssueRepository) Create(issue *entity.Issue) error {
	return r.DB.Create(issue).Error
}

func (r *IssueRepository) FindByID(id uint) (*entity.Issue, error) {
	var issue entity.Issue
	if err := r.DB.First(&issue, id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// FindAll applies equality filters (AND) and returns newest first.
func (r *IssueRepository) FindAll(filters map[string]any) ([]entity.Issue, error) {
	issues := []entity.Issue{}
	q := r.DB.Order("created_at DESC")
	if len(filters) > 0 {
		q = q.Where(filters)
	}
	if err := q.Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Issue{}).Where("id = ?", id).Update("status", status).Error
}

func (r *IssueRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Issue{}, id).Error
}
