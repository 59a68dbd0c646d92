package domain

import (
	"context"
	"database/sql"
	"errors"

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

type ProjectDomain interface {
	Create(context.Context, *model.CreateProjectRequest) (*model.CreateProjectResponse, error)
	Get(context.Context, *model.GetProjectRequest) (*model.GetProjectResponse, error)
	GetList(context.Context, *model.GetProjectsRequest) (*model.GetProjectsResponse, error)
	UpdateByID(context.Context, *model.UpdateProjectRequest) (*model.UpdateProjectResponse, error)
	DeleteByID(context.Context, *model.DeleteProjectRequest) (*model.DeleteProjectResponse, error)
}

type projectDomain struct {
	projectRepo        repository.ProjectRepository
	teamRepo           repository.TeamRepository
	userRepo           repository.UserRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewProjectDomain(
	projectRepo repository.ProjectRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) ProjectDomain {
	return &projectDomain{
		projectRepo:        projectRepo,
		teamRepo:           teamRepo,
		userRepo:           userRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *projectDomain) Create(
	ctx context.Context, req *model.CreateProjectRequest,
) (*model.CreateProjectResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Project name is required")
	}

	status := entity.ProjectStatusPlanning
	if req.Status != "" {
		var err error
		status, err = enum.ToEnum[entity.ProjectStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
	}

	if req.Progress < 0 || req.Progress > 100 {
		return nil, errorx.New(errorx.BadRequest, "Progress must be in range [0, 100]")
	}

	teamID := sql.NullString{}
	if req.TeamID != "" {
		if _, err := d.teamRepo.GetByID(ctx, req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found team")
			}

			xcontext.Logger(ctx).Errorf("Cannot get team: %v", err)
			return nil, errorx.Unknown
		}

		teamID = sql.NullString{Valid: true, String: req.TeamID}
	}

	deadline, err := parseOptionalTime(req.Deadline)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid deadline")
	}

	project := &entity.Project{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   xcontext.RequestUserID(ctx),
		TeamID:      teamID,
		Status:      status,
		Progress:    req.Progress,
		Budget:      req.Budget,
		Deadline:    deadline,
	}

	if err := d.projectRepo.Create(ctx, project); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create project: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateProjectResponse{ID: project.ID}, nil
}

func (d *projectDomain) Get(
	ctx context.Context, req *model.GetProjectRequest,
) (*model.GetProjectResponse, error) {
	project, err := d.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetProjectResponse(convertProject(project))
	return &resp, nil
}

func (d *projectDomain) GetList(
	ctx context.Context, req *model.GetProjectsRequest,
) (*model.GetProjectsResponse, error) {
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
		if _, err := enum.ToEnum[entity.ProjectStatus](req.Status); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
	}

	projects, err := d.projectRepo.GetList(ctx, repository.GetListProjectFilter{
		ManagerID: req.ManagerID,
		TeamID:    req.TeamID,
		Status:    req.Status,
		Q:         req.Q,
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project list: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Project{}
	for i := range projects {
		result = append(result, convertProject(&projects[i]))
	}

	return &model.GetProjectsResponse{Projects: result}, nil
}

func (d *projectDomain) UpdateByID(
	ctx context.Context, req *model.UpdateProjectRequest,
) (*model.UpdateProjectResponse, error) {
	project, err := d.getManagedProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updateMap := map[string]any{}
	if req.Name != "" {
		updateMap["name"] = req.Name
	}

	if req.Description != "" {
		updateMap["description"] = req.Description
	}

	if req.TeamID != "" {
		if _, err := d.teamRepo.GetByID(ctx, req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found team")
			}

			xcontext.Logger(ctx).Errorf("Cannot get team: %v", err)
			return nil, errorx.Unknown
		}

		updateMap["team_id"] = req.TeamID
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.ProjectStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		updateMap["status"] = status

		// Completing a project also completes its progress.
		if status == entity.ProjectStatusCompleted && req.Progress == nil {
			updateMap["progress"] = 100
		}
	}

	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, errorx.New(errorx.BadRequest, "Progress must be in range [0, 100]")
		}

		updateMap["progress"] = *req.Progress
	}

	if req.Budget != nil {
		if *req.Budget < 0 {
			return nil, errorx.New(errorx.BadRequest, "Budget must not be negative")
		}

		updateMap["budget"] = *req.Budget
	}

	if req.Deadline != "" {
		deadline, err := parseOptionalTime(req.Deadline)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid deadline")
		}

		updateMap["deadline"] = deadline
	}

	if err := d.projectRepo.UpdateByID(ctx, project.ID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update project: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.projectRepo.GetByID(ctx, project.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project after update: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateProjectResponse{Project: convertProject(updated)}, nil
}

func (d *projectDomain) DeleteByID(
	ctx context.Context, req *model.DeleteProjectRequest,
) (*model.DeleteProjectResponse, error) {
	project, err := d.getManagedProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.projectRepo.DeleteByID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteProjectResponse{}, nil
}

// getManagedProject loads the project and checks the requesting user is its
// manager or a global admin.
func (d *projectDomain) getManagedProject(
	ctx context.Context, id string,
) (*entity.Project, error) {
	project, err := d.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	if project.ManagerID != xcontext.RequestUserID(ctx) {
		if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	}

	return project, nil
}
