package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/collabflow/backend/internal/common"
	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/enum"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InitiativeDomain interface {
	Create(context.Context, *model.CreateInitiativeRequest) (*model.CreateInitiativeResponse, error)
	Get(context.Context, *model.GetInitiativeRequest) (*model.GetInitiativeResponse, error)
	GetList(context.Context, *model.GetInitiativesRequest) (*model.GetInitiativesResponse, error)
	UpdateByID(context.Context, *model.UpdateInitiativeRequest) (*model.UpdateInitiativeResponse, error)
	DeleteByID(context.Context, *model.DeleteInitiativeRequest) (*model.DeleteInitiativeResponse, error)
}

type initiativeDomain struct {
	initiativeRepo     repository.InitiativeRepository
	userRepo           repository.UserRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewInitiativeDomain(
	initiativeRepo repository.InitiativeRepository,
	userRepo repository.UserRepository,
) InitiativeDomain {
	return &initiativeDomain{
		initiativeRepo:     initiativeRepo,
		userRepo:           userRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *initiativeDomain) Create(
	ctx context.Context, req *model.CreateInitiativeRequest,
) (*model.CreateInitiativeResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Initiative title is required")
	}

	status := entity.InitiativeStatusPending
	if req.Status != "" {
		var err error
		status, err = enum.ToEnum[entity.InitiativeStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
	}

	if req.Progress < 0 || req.Progress > 100 {
		return nil, errorx.New(errorx.BadRequest, "Progress must be in range [0, 100]")
	}

	targetDate, err := parseOptionalTime(req.TargetDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid target date")
	}

	initiative := &entity.Initiative{
		Base:        entity.Base{ID: uuid.NewString()},
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     xcontext.RequestUserID(ctx),
		Status:      status,
		Progress:    req.Progress,
		Priority:    req.Priority,
		TargetDate:  targetDate,
	}

	if err := d.initiativeRepo.Create(ctx, initiative); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create initiative: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateInitiativeResponse{ID: initiative.ID}, nil
}

func (d *initiativeDomain) Get(
	ctx context.Context, req *model.GetInitiativeRequest,
) (*model.GetInitiativeResponse, error) {
	initiative, err := d.initiativeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found initiative")
		}

		xcontext.Logger(ctx).Errorf("Cannot get initiative: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetInitiativeResponse(convertInitiative(initiative))
	return &resp, nil
}

func (d *initiativeDomain) GetList(
	ctx context.Context, req *model.GetInitiativesRequest,
) (*model.GetInitiativesResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	if req.Status != "" {
		if _, err := enum.ToEnum[entity.InitiativeStatus](req.Status); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
	}

	initiatives, err := d.initiativeRepo.GetList(ctx, repository.GetListInitiativeFilter{
		OwnerID: req.OwnerID,
		Status:  req.Status,
		Q:       req.Q,
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get initiative list: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Initiative{}
	for i := range initiatives {
		result = append(result, convertInitiative(&initiatives[i]))
	}

	return &model.GetInitiativesResponse{Initiatives: result}, nil
}

func (d *initiativeDomain) UpdateByID(
	ctx context.Context, req *model.UpdateInitiativeRequest,
) (*model.UpdateInitiativeResponse, error) {
	initiative, err := d.getOwnedInitiative(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updateMap := map[string]any{}
	if req.Title != "" {
		updateMap["title"] = req.Title
	}

	if req.Description != "" {
		updateMap["description"] = req.Description
	}

	if req.Priority != "" {
		updateMap["priority"] = req.Priority
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.InitiativeStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		updateMap["status"] = status

		// Completing an initiative also completes its progress.
		if status == entity.InitiativeStatusCompleted && req.Progress == nil {
			updateMap["progress"] = 100
		}
	}

	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, errorx.New(errorx.BadRequest, "Progress must be in range [0, 100]")
		}

		updateMap["progress"] = *req.Progress
	}

	if req.TargetDate != "" {
		targetDate, err := parseOptionalTime(req.TargetDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid target date")
		}

		updateMap["target_date"] = targetDate
	}

	if err := d.initiativeRepo.UpdateByID(ctx, initiative.ID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update initiative: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.initiativeRepo.GetByID(ctx, initiative.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get initiative after update: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateInitiativeResponse{Initiative: convertInitiative(updated)}, nil
}

func (d *initiativeDomain) DeleteByID(
	ctx context.Context, req *model.DeleteInitiativeRequest,
) (*model.DeleteInitiativeResponse, error) {
	initiative, err := d.getOwnedInitiative(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.initiativeRepo.DeleteByID(ctx, initiative.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete initiative: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteInitiativeResponse{}, nil
}

// getOwnedInitiative loads the initiative and checks the requesting user is
// its owner or a global admin.
func (d *initiativeDomain) getOwnedInitiative(
	ctx context.Context, id string,
) (*entity.Initiative, error) {
	initiative, err := d.initiativeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found initiative")
		}

		xcontext.Logger(ctx).Errorf("Cannot get initiative: %v", err)
		return nil, errorx.Unknown
	}

	if initiative.OwnerID != xcontext.RequestUserID(ctx) {
		if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	}

	return initiative, nil
}

func parseOptionalTime(s string) (sql.NullTime, error) {
	if s == "" {
		return sql.NullTime{}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return sql.NullTime{}, err
	}

	return sql.NullTime{Valid: true, Time: t}, nil
}
