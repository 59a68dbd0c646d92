package domain

import (
	"context"
	"errors"

	"github.com/collabflow/backend/internal/common"
	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamDomain interface {
	Create(context.Context, *model.CreateTeamRequest) (*model.CreateTeamResponse, error)
	Get(context.Context, *model.GetTeamRequest) (*model.GetTeamResponse, error)
	GetList(context.Context, *model.GetTeamsRequest) (*model.GetTeamsResponse, error)
	UpdateByID(context.Context, *model.UpdateTeamRequest) (*model.UpdateTeamResponse, error)
	DeleteByID(context.Context, *model.DeleteTeamRequest) (*model.DeleteTeamResponse, error)
	AddMember(context.Context, *model.AddTeamMemberRequest) (*model.AddTeamMemberResponse, error)
	RemoveMember(context.Context, *model.RemoveTeamMemberRequest) (*model.RemoveTeamMemberResponse, error)
	GetMembers(context.Context, *model.GetTeamMembersRequest) (*model.GetTeamMembersResponse, error)
}

type teamDomain struct {
	teamRepo           repository.TeamRepository
	userRepo           repository.UserRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewTeamDomain(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) TeamDomain {
	return &teamDomain{
		teamRepo:           teamRepo,
		userRepo:           userRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *teamDomain) Create(
	ctx context.Context, req *model.CreateTeamRequest,
) (*model.CreateTeamResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Team name is required")
	}

	_, err := d.teamRepo.GetByName(ctx, req.Name)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get team by name: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.AlreadyExists, "Duplicated team name")
	}

	userID := xcontext.RequestUserID(ctx)
	team := &entity.Team{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		Department:  req.Department,
		CreatedBy:   userID,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.teamRepo.Create(ctx, team); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create team: %v", err)
		return nil, errorx.Unknown
	}

	// The creator joins the team as its leader.
	err = d.teamRepo.AddMember(ctx, &entity.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   "leader",
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add creator to team: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.CreateTeamResponse{ID: team.ID}, nil
}

func (d *teamDomain) Get(
	ctx context.Context, req *model.GetTeamRequest,
) (*model.GetTeamResponse, error) {
	team, err := d.teamRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found team")
		}

		xcontext.Logger(ctx).Errorf("Cannot get team: %v", err)
		return nil, errorx.Unknown
	}

	totalMembers, err := d.teamRepo.CountMembers(ctx, team.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count team members: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetTeamResponse(convertTeam(team, totalMembers))
	return &resp, nil
}

func (d *teamDomain) GetList(
	ctx context.Context, req *model.GetTeamsRequest,
) (*model.GetTeamsResponse, error) {
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

	teams, err := d.teamRepo.GetList(ctx, repository.GetListTeamFilter{
		Department: req.Department,
		Q:          req.Q,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get team list: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Team{}
	for i := range teams {
		totalMembers, err := d.teamRepo.CountMembers(ctx, teams[i].ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count members of team %s: %v", teams[i].ID, err)
			return nil, errorx.Unknown
		}

		result = append(result, convertTeam(&teams[i], totalMembers))
	}

	return &model.GetTeamsResponse{Teams: result}, nil
}

func (d *teamDomain) UpdateByID(
	ctx context.Context, req *model.UpdateTeamRequest,
) (*model.UpdateTeamResponse, error) {
	if err := d.verifyTeamPermission(ctx, req.ID); err != nil {
		return nil, err
	}

	update := entity.Team{
		Name:        req.Name,
		Description: req.Description,
		Department:  req.Department,
	}

	if err := d.teamRepo.UpdateByID(ctx, req.ID, &update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update team: %v", err)
		return nil, errorx.Unknown
	}

	team, err := d.teamRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get team after update: %v", err)
		return nil, errorx.Unknown
	}

	totalMembers, err := d.teamRepo.CountMembers(ctx, team.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count team members: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateTeamResponse{Team: convertTeam(team, totalMembers)}, nil
}

func (d *teamDomain) DeleteByID(
	ctx context.Context, req *model.DeleteTeamRequest,
) (*model.DeleteTeamResponse, error) {
	if err := d.verifyTeamPermission(ctx, req.ID); err != nil {
		return nil, err
	}

	if err := d.teamRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete team: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteTeamResponse{}, nil
}

func (d *teamDomain) AddMember(
	ctx context.Context, req *model.AddTeamMemberRequest,
) (*model.AddTeamMemberResponse, error) {
	if err := d.verifyTeamPermission(ctx, req.TeamID); err != nil {
		return nil, err
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.teamRepo.GetMember(ctx, req.TeamID, req.UserID); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "User is already a member of this team")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get team member: %v", err)
		return nil, errorx.Unknown
	}

	role := req.Role
	if role == "" {
		role = "member"
	}

	err := d.teamRepo.AddMember(ctx, &entity.TeamMember{
		TeamID: req.TeamID,
		UserID: req.UserID,
		Role:   role,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add team member: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddTeamMemberResponse{}, nil
}

func (d *teamDomain) RemoveMember(
	ctx context.Context, req *model.RemoveTeamMemberRequest,
) (*model.RemoveTeamMemberResponse, error) {
	if err := d.verifyTeamPermission(ctx, req.TeamID); err != nil {
		return nil, err
	}

	if _, err := d.teamRepo.GetMember(ctx, req.TeamID, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User is not a member of this team")
		}

		xcontext.Logger(ctx).Errorf("Cannot get team member: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.teamRepo.RemoveMember(ctx, req.TeamID, req.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot remove team member: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RemoveTeamMemberResponse{}, nil
}

func (d *teamDomain) GetMembers(
	ctx context.Context, req *model.GetTeamMembersRequest,
) (*model.GetTeamMembersResponse, error) {
	if _, err := d.teamRepo.GetByID(ctx, req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found team")
		}

		xcontext.Logger(ctx).Errorf("Cannot get team: %v", err)
		return nil, errorx.Unknown
	}

	members, err := d.teamRepo.GetMembers(ctx, req.TeamID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get team members: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.TeamMember{}
	for i := range members {
		result = append(result, convertTeamMember(&members[i]))
	}

	return &model.GetTeamMembersResponse{Members: result}, nil
}

// verifyTeamPermission allows the team creator, a team leader, or a global
// admin to manage the team.
func (d *teamDomain) verifyTeamPermission(ctx context.Context, teamID string) error {
	team, err := d.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found team")
		}

		xcontext.Logger(ctx).Errorf("Cannot get team: %v", err)
		return errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if team.CreatedBy == userID {
		return nil
	}

	if member, err := d.teamRepo.GetMember(ctx, teamID, userID); err == nil && member.Role == "leader" {
		return nil
	}

	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		return errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return nil
}
