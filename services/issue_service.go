package services

import (
	"errors"
	"fmt"

	"github.com/ALjabriOmars/SCSP/entity"
	"github.com/ALjabriOmars/SCSP/repository"

	"gorm.io/gorm"
)

// DepartmentTypes คือหน่วยงานของเทศบาลที่รับเรื่องได้
var DepartmentTypes = []string{"Waste", "Water", "Transport", "Energy", "Safety"}

var issueStatuses = map[string]bool{
	"open":     true,
	"resolved": true,
}

type IssueService struct {
	repo *repository.IssueRepository
}

func NewIssueService(repo *repository.IssueRepository) *IssueService {
	return &IssueService{repo: repo}
}

// Report files a new issue with status "open". The department is derived from
// the issue type: a type naming a known department routes there, anything else
// stays unassigned.
func (s *IssueService) Report(issueType, description, location string) (*entity.Issue, error) {
	if issueType == "" || description == "" || location == "" {
		return nil, fmt.Errorf("%w: missing fields", ErrValidation)
	}

	var department *string
	for _, d := range DepartmentTypes {
		if issueType == d {
			dep := d
			department = &dep
			break
		}
	}

	issue := &entity.Issue{
		Type:        issueType,
		Description: description,
		Location:    location,
		Department:  department,
		Status:      "open",
	}
	if err := s.repo.Create(issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// List returns issues newest first, optionally narrowed by department and/or
// status. Both filters combine.
func (s *IssueService) List(department, status string) ([]entity.Issue, error) {
	if status != "" && !issueStatuses[status] {
		return nil, fmt.Errorf("%w: invalid status", ErrValidation)
	}

	filters := map[string]any{}
	if department != "" {
		filters["department"] = department
	}
	if status != "" {
		filters["status"] = status
	}
	return s.repo.FindAll(filters)
}

// Resolve marks the issue resolved. Resolving twice is not an error; there is
// no way back to "open".
func (s *IssueService) Resolve(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.UpdateStatus(id, "resolved")
}

// Delete removes the issue permanently.
func (s *IssueService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
