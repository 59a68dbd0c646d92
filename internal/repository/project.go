package repository

import (
	"context"
	"time"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/pkg/xcontext"
)

type GetListProjectFilter struct {
	ManagerID string
	TeamID    string
	Status    string
	Q         string
	Offset    int
	Limit     int
}

// StatisticProjectFilter selects a manager's projects for statistics. A zero
// CreatedAfter places no lower bound on the creation time.
type StatisticProjectFilter struct {
	ManagerID    string
	CreatedAfter time.Time
}

type ProjectRepository interface {
	Create(ctx context.Context, data *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetList(ctx context.Context, filter GetListProjectFilter) ([]entity.Project, error)
	GetListForStatistic(ctx context.Context, filter StatisticProjectFilter) ([]entity.Project, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	CountByManagerID(ctx context.Context, managerID string) (int64, error)
}

type projectRepository struct{}

func NewProjectRepository() *projectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(ctx context.Context, data *entity.Project) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	var record entity.Project
	if err := xcontext.DB(ctx).Preload("Manager").Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *projectRepository) GetList(
	ctx context.Context, filter GetListProjectFilter,
) ([]entity.Project, error) {
	tx := xcontext.DB(ctx).Model(&entity.Project{}).
		Preload("Manager").
		Order("created_at DESC, id ASC")

	if filter.ManagerID != "" {
		tx = tx.Where("manager_id=?", filter.ManagerID)
	}

	if filter.TeamID != "" {
		tx = tx.Where("team_id=?", filter.TeamID)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if filter.Q != "" {
		tx = tx.Where("name LIKE ?", "%"+filter.Q+"%")
	}

	if filter.Limit > 0 {
		tx = tx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var records []entity.Project
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *projectRepository) GetListForStatistic(
	ctx context.Context, filter StatisticProjectFilter,
) ([]entity.Project, error) {
	tx := xcontext.DB(ctx).Model(&entity.Project{}).Where("manager_id=?", filter.ManagerID)
	if !filter.CreatedAfter.IsZero() {
		tx = tx.Where("created_at >= ?", filter.CreatedAfter)
	}

	var records []entity.Project
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *projectRepository) UpdateByID(
	ctx context.Context, id string, updateMap map[string]any,
) error {
	return xcontext.DB(ctx).Model(&entity.Project{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *projectRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Project{}).Error
}

func (r *projectRepository) CountByManagerID(ctx context.Context, managerID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Project{}).
		Where("manager_id=?", managerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
