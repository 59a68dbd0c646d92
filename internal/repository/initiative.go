package repository

import (
	"context"
	"time"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/pkg/xcontext"
)

type GetListInitiativeFilter struct {
	OwnerID string
	Status  string
	Q       string
	Offset  int
	Limit   int
}

// StatisticInitiativeFilter selects an owner's initiatives for statistics.
// A zero CreatedAfter places no lower bound on the creation time.
type StatisticInitiativeFilter struct {
	OwnerID      string
	CreatedAfter time.Time
}

type InitiativeRepository interface {
	Create(ctx context.Context, data *entity.Initiative) error
	GetByID(ctx context.Context, id string) (*entity.Initiative, error)
	GetList(ctx context.Context, filter GetListInitiativeFilter) ([]entity.Initiative, error)
	GetListForStatistic(ctx context.Context, filter StatisticInitiativeFilter) ([]entity.Initiative, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	CountByOwnerID(ctx context.Context, ownerID string) (int64, error)
}

type initiativeRepository struct{}

func NewInitiativeRepository() *initiativeRepository {
	return &initiativeRepository{}
}

func (r *initiativeRepository) Create(ctx context.Context, data *entity.Initiative) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *initiativeRepository) GetByID(ctx context.Context, id string) (*entity.Initiative, error) {
	var record entity.Initiative
	if err := xcontext.DB(ctx).Preload("Owner").Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *initiativeRepository) GetList(
	ctx context.Context, filter GetListInitiativeFilter,
) ([]entity.Initiative, error) {
	tx := xcontext.DB(ctx).Model(&entity.Initiative{}).
		Preload("Owner").
		Order("created_at DESC, id ASC")

	if filter.OwnerID != "" {
		tx = tx.Where("owner_id=?", filter.OwnerID)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if filter.Q != "" {
		tx = tx.Where("title LIKE ?", "%"+filter.Q+"%")
	}

	if filter.Limit > 0 {
		tx = tx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var records []entity.Initiative
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *initiativeRepository) GetListForStatistic(
	ctx context.Context, filter StatisticInitiativeFilter,
) ([]entity.Initiative, error) {
	tx := xcontext.DB(ctx).Model(&entity.Initiative{}).Where("owner_id=?", filter.OwnerID)
	if !filter.CreatedAfter.IsZero() {
		tx = tx.Where("created_at >= ?", filter.CreatedAfter)
	}

	var records []entity.Initiative
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *initiativeRepository) UpdateByID(
	ctx context.Context, id string, updateMap map[string]any,
) error {
	return xcontext.DB(ctx).Model(&entity.Initiative{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *initiativeRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Initiative{}).Error
}

func (r *initiativeRepository) CountByOwnerID(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Initiative{}).
		Where("owner_id=?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
