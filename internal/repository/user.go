package repository

import (
	"context"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/pkg/xcontext"
)

type GetListUserFilter struct {
	Department string
	Role       string
	Q          string
	Offset     int
	Limit      int
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error)
	UpdateByID(ctx context.Context, id string, data *entity.User) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetList orders by creation time then id, so repeated calls with the same
// filter always enumerate users in the same order.
func (r *userRepository) GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error) {
	tx := xcontext.DB(ctx).Model(&entity.User{}).Order("created_at ASC, id ASC")

	if filter.Department != "" {
		tx = tx.Where("department=?", filter.Department)
	}

	if filter.Role != "" {
		tx = tx.Where("role=?", filter.Role)
	}

	if filter.Q != "" {
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?",
			"%"+filter.Q+"%", "%"+filter.Q+"%", "%"+filter.Q+"%")
	}

	if filter.Limit > 0 {
		tx = tx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var records []entity.User
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, data *entity.User) error {
	updateMap := map[string]any{}
	if data.FirstName != "" {
		updateMap["first_name"] = data.FirstName
	}

	if data.LastName != "" {
		updateMap["last_name"] = data.LastName
	}

	if data.Department != "" {
		updateMap["department"] = data.Department
	}

	if data.AvatarURL != "" {
		updateMap["avatar_url"] = data.AvatarURL
	}

	if data.Role != "" {
		updateMap["role"] = data.Role
	}

	if data.Status != "" {
		updateMap["status"] = data.Status
	}

	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.User{}).Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
