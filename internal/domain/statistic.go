package domain

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/collabflow/backend/internal/domain/productivity"
	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/xcontext"
)

const defaultProductivityLimit = 10

type StatisticDomain interface {
	GetUserProductivity(context.Context, *model.GetUserProductivityRequest) (*model.GetUserProductivityResponse, error)
}

type statisticDomain struct {
	userRepo       repository.UserRepository
	initiativeRepo repository.InitiativeRepository
	projectRepo    repository.ProjectRepository
	teamRepo       repository.TeamRepository
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	initiativeRepo repository.InitiativeRepository,
	projectRepo repository.ProjectRepository,
	teamRepo repository.TeamRepository,
) StatisticDomain {
	return &statisticDomain{
		userRepo:       userRepo,
		initiativeRepo: initiativeRepo,
		projectRepo:    projectRepo,
		teamRepo:       teamRepo,
	}
}

func (d *statisticDomain) GetUserProductivity(
	ctx context.Context, req *model.GetUserProductivityRequest,
) (*model.GetUserProductivityResponse, error) {
	limit := parseProductivityLimit(req.Limit)
	period := productivity.ToPeriod(req.Period)

	now := time.Now()
	createdAfter := time.Time{}
	if start, ok := period.Start(now); ok {
		createdAfter = start
	}

	users, err := d.userRepo.GetList(ctx, repository.GetListUserFilter{
		Department: req.Department,
		Role:       req.Role,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user list: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.UserProductivity{}
	for i := range users {
		record, err := d.buildUserProductivity(ctx, &users[i], createdAfter, now)
		if err != nil {
			return nil, err
		}

		result = append(result, record)
	}

	// Users with equal scores keep their creation order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ProductivityScore > result[j].ProductivityScore
	})

	total := len(result)
	if len(result) > limit {
		result = result[:limit]
	}

	return &model.GetUserProductivityResponse{
		Users:      result,
		Total:      total,
		Period:     string(period),
		Department: req.Department,
		Role:       req.Role,
	}, nil
}

func (d *statisticDomain) buildUserProductivity(
	ctx context.Context, user *entity.User, createdAfter, now time.Time,
) (model.UserProductivity, error) {
	initiatives, err := d.initiativeRepo.GetListForStatistic(ctx, repository.StatisticInitiativeFilter{
		OwnerID:      user.ID,
		CreatedAfter: createdAfter,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get initiatives of user %s: %v", user.ID, err)
		return model.UserProductivity{}, errorx.Unknown
	}

	projects, err := d.projectRepo.GetListForStatistic(ctx, repository.StatisticProjectFilter{
		ManagerID:    user.ID,
		CreatedAfter: createdAfter,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get projects of user %s: %v", user.ID, err)
		return model.UserProductivity{}, errorx.Unknown
	}

	initiativeRecords := make([]productivity.Record, 0, len(initiatives))
	for _, i := range initiatives {
		initiativeRecords = append(initiativeRecords, productivity.Record{
			Status:    string(i.Status),
			Progress:  i.Progress,
			CreatedAt: i.CreatedAt,
			UpdatedAt: i.UpdatedAt,
		})
	}

	projectRecords := make([]productivity.Record, 0, len(projects))
	for _, p := range projects {
		projectRecords = append(projectRecords, productivity.Record{
			Status:    string(p.Status),
			Progress:  p.Progress,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	initiativeStats := productivity.BuildStats(initiativeRecords, productivity.StatusPending)
	projectStats := productivity.BuildStats(projectRecords, productivity.StatusPlanning)
	initiativeRecent := productivity.BuildRecentActivity(initiativeRecords, now)
	projectRecent := productivity.BuildRecentActivity(projectRecords, now)

	// Lifetime counts ignore the period filter on purpose.
	totalInitiatives, err := d.initiativeRepo.CountByOwnerID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count initiatives of user %s: %v", user.ID, err)
		return model.UserProductivity{}, errorx.Unknown
	}

	totalProjects, err := d.projectRepo.CountByManagerID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count projects of user %s: %v", user.ID, err)
		return model.UserProductivity{}, errorx.Unknown
	}

	teamMemberships, err := d.teamRepo.CountMembershipsByUserID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count memberships of user %s: %v", user.ID, err)
		return model.UserProductivity{}, errorx.Unknown
	}

	return model.UserProductivity{
		User:              convertUser(user),
		DisplayName:       user.FirstName + " " + user.LastName,
		ProductivityScore: productivity.Score(initiativeStats, projectStats),
		InitiativeStats:   convertActivityStats(initiativeStats),
		ProjectStats:      convertActivityStats(projectStats),
		RecentActivity: model.RecentActivity{
			InitiativesCreated: initiativeRecent.Created,
			InitiativesUpdated: initiativeRecent.Updated,
			ProjectsCreated:    projectRecent.Created,
			ProjectsUpdated:    projectRecent.Updated,
		},
		TotalInitiatives: totalInitiatives,
		TotalProjects:    totalProjects,
		TeamMemberships:  teamMemberships,
	}, nil
}

func convertActivityStats(stats productivity.Stats) model.UserActivityStats {
	return model.UserActivityStats{
		Total:             stats.Total,
		Completed:         stats.Completed,
		InProgress:        stats.InProgress,
		PendingOrPlanning: stats.PendingOrPlanning,
		OnHold:            stats.OnHold,
		AvgProgress:       stats.AvgProgress,
	}
}

// parseProductivityLimit falls back to the default for missing, unparsable,
// zero, or negative values.
func parseProductivityLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultProductivityLimit
	}

	return limit
}
