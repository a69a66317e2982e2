package services

import (
	"errors"
	"fmt"

	"github.com/ALjabriOmars/SCSP/entity"
	"github.com/ALjabriOmars/SCSP/repository"

	"gorm.io/gorm"
)

type BidService struct {
	repo *repository.BidRepository
}

func NewBidService(repo *repository.BidRepository) *BidService {
	return &BidService{repo: repo}
}

// Submit files a bid on a task. TaskID and TaskName are copied onto the bid as
// a snapshot; later task edits do not touch existing bids. Multiple bids per
// task are expected — the whole point is competitive bidding.
func (s *BidService) Submit(taskID int, taskName, providerName, bidPrice, department string) (*entity.Bid, error) {
	if taskID <= 0 || taskName == "" || providerName == "" || bidPrice == "" || department == "" {
		return nil, fmt.Errorf("%w: missing fields", ErrValidation)
	}

	bid := &entity.Bid{
		TaskID:       taskID,
		TaskName:     taskName,
		ProviderName: providerName,
		BidPrice:     bidPrice,
		Department:   department,
		Status:       "pending",
	}
	if err := s.repo.Create(bid); err != nil {
		return nil, err
	}
	return bid, nil
}

// List filters by department or provider, never both: department wins when the
// caller supplies both. No filter returns everything.
func (s *BidService) List(department, provider string) ([]entity.Bid, error) {
	filters := map[string]any{}
	if department != "" {
		filters["department"] = department
	} else if provider != "" {
		filters["provider_name"] = provider
	}
	return s.repo.FindAll(filters)
}

// UpdateStatus overwrites the bid status with whatever the caller sent —
// the status vocabulary (pending/accepted/rejected/completed) is conventional,
// not enforced. Reason and completed date are written only when non-empty;
// once set they cannot be cleared.
func (s *BidService) UpdateStatus(id uint, status, reason, completedDate string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]any{"status": status}
	if reason != "" {
		fields["reason"] = reason
	}
	if completedDate != "" {
		fields["completed_date"] = completedDate
	}
	return s.repo.Updates(id, fields)
}
