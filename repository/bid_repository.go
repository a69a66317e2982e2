package repository

import (
	"github.com/ALjabriOmars/SCSP/entity"

	"gorm.io/gorm"
)

type BidRepository struct {
	DB *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{DB: db}
}

func (r *BidRepository) Create(bid *entity.Bid) error {
	return r.DB.Create(bid).Error
}

func (r *BidRepository) FindByID(id uint) (*entity.Bid, error) {
	var bid entity.Bid
	if err := r.DB.First(&bid, id).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

// FindAll applies equality filters (AND). Bids carry no defined ordering.
func (r *BidRepository) FindAll(filters map[string]any) ([]entity.Bid, error) {
	bids := []entity.Bid{}
	q := r.DB
	if len(filters) > 0 {
		q = q.Where(filters)
	}
	if err := q.Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

// Updates writes only the given columns.
func (r *BidRepository) Updates(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Bid{}).Where("id = ?", id).Updates(fields).Error
}
