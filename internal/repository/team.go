package repository

import (
	"context"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/pkg/xcontext"
)

type GetListTeamFilter struct {
	Department string
	Q          string
	Offset     int
	Limit      int
}

type TeamRepository interface {
	Create(ctx context.Context, data *entity.Team) error
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	GetByName(ctx context.Context, name string) (*entity.Team, error)
	GetList(ctx context.Context, filter GetListTeamFilter) ([]entity.Team, error)
	UpdateByID(ctx context.Context, id string, data *entity.Team) error
	DeleteByID(ctx context.Context, id string) error

	AddMember(ctx context.Context, data *entity.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	GetMember(ctx context.Context, teamID, userID string) (*entity.TeamMember, error)
	GetMembers(ctx context.Context, teamID string) ([]entity.TeamMember, error)
	CountMembers(ctx context.Context, teamID string) (int64, error)
	CountMembershipsByUserID(ctx context.Context, userID string) (int64, error)
}

type teamRepository struct{}

func NewTeamRepository() *teamRepository {
	return &teamRepository{}
}

func (r *teamRepository) Create(ctx context.Context, data *entity.Team) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	var record entity.Team
	err := xcontext.DB(ctx).Preload("CreatedByUser").Where("id=?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*entity.Team, error) {
	var record entity.Team
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *teamRepository) GetList(
	ctx context.Context, filter GetListTeamFilter,
) ([]entity.Team, error) {
	tx := xcontext.DB(ctx).Model(&entity.Team{}).
		Preload("CreatedByUser").
		Order("created_at ASC, id ASC")

	if filter.Department != "" {
		tx = tx.Where("department=?", filter.Department)
	}

	if filter.Q != "" {
		tx = tx.Where("name LIKE ?", "%"+filter.Q+"%")
	}

	if filter.Limit > 0 {
		tx = tx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var records []entity.Team
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *teamRepository) UpdateByID(ctx context.Context, id string, data *entity.Team) error {
	updateMap := map[string]any{}
	if data.Name != "" {
		updateMap["name"] = data.Name
	}

	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.Department != "" {
		updateMap["department"] = data.Department
	}

	return xcontext.DB(ctx).Model(&entity.Team{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *teamRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Team{}).Error
}

func (r *teamRepository) AddMember(ctx context.Context, data *entity.TeamMember) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	return xcontext.DB(ctx).
		Where("team_id=? AND user_id=?", teamID, userID).
		Delete(&entity.TeamMember{}).Error
}

func (r *teamRepository) GetMember(
	ctx context.Context, teamID, userID string,
) (*entity.TeamMember, error) {
	var record entity.TeamMember
	err := xcontext.DB(ctx).
		Where("team_id=? AND user_id=?", teamID, userID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *teamRepository) GetMembers(ctx context.Context, teamID string) ([]entity.TeamMember, error) {
	var records []entity.TeamMember
	err := xcontext.DB(ctx).
		Preload("User").
		Where("team_id=?", teamID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *teamRepository) CountMembers(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.TeamMember{}).
		Where("team_id=?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *teamRepository) CountMembershipsByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.TeamMember{}).
		Where("user_id=?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
