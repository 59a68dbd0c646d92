package domain

import (
	"testing"
	"time"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newStatisticDomain() StatisticDomain {
	return NewStatisticDomain(
		repository.NewUserRepository(),
		repository.NewInitiativeRepository(),
		repository.NewProjectRepository(),
		repository.NewTeamRepository(),
	)
}

func Test_statisticDomain_GetUserProductivity(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain()

	// User2 completes two initiatives, user3 completes one project. With the
	// project weight higher than the initiative one, user3 must rank first.
	for i := 0; i < 2; i++ {
		_, err := testutil.SampleInitiative(ctx, &entity.Initiative{
			OwnerID:  testutil.User2.ID,
			Status:   entity.InitiativeStatusCompleted,
			Progress: 100,
		})
		require.NoError(t, err)
	}

	_, err := testutil.SampleProject(ctx, &entity.Project{
		ManagerID: testutil.User3.ID,
		Status:    entity.ProjectStatusCompleted,
		Progress:  100,
	})
	require.NoError(t, err)

	resp, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	require.Equal(t, "all", resp.Period)
	require.Len(t, resp.Users, 3)

	require.Equal(t, testutil.User3.ID, resp.Users[0].User.ID)
	require.Equal(t, 18, resp.Users[0].ProductivityScore)
	require.Equal(t, "Carol Le", resp.Users[0].DisplayName)
	require.Equal(t, 1, resp.Users[0].ProjectStats.Completed)
	require.Equal(t, int64(1), resp.Users[0].TotalProjects)

	require.Equal(t, testutil.User2.ID, resp.Users[1].User.ID)
	require.Equal(t, 12, resp.Users[1].ProductivityScore)
	require.Equal(t, 2, resp.Users[1].InitiativeStats.Completed)
	require.Equal(t, float64(100), resp.Users[1].InitiativeStats.AvgProgress)
	require.Equal(t, int64(2), resp.Users[1].TotalInitiatives)
	require.Equal(t, int64(1), resp.Users[1].TeamMemberships)

	require.Equal(t, testutil.User1.ID, resp.Users[2].User.ID)
	require.Equal(t, 0, resp.Users[2].ProductivityScore)
}

func Test_statisticDomain_GetUserProductivity_WeekPeriod(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain()

	// An initiative completed forty days ago falls outside the week window
	// and the recent activity digest, but still counts as lifetime work.
	old := time.Now().Add(-40 * 24 * time.Hour)
	_, err := testutil.SampleInitiative(ctx, &entity.Initiative{
		Base:     entity.Base{ID: "old-initiative", CreatedAt: old, UpdatedAt: old},
		OwnerID:  testutil.User2.ID,
		Status:   entity.InitiativeStatusCompleted,
		Progress: 100,
	})
	require.NoError(t, err)

	resp, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{Period: "week"})
	require.NoError(t, err)
	require.Equal(t, "week", resp.Period)

	var user2 *model.UserProductivity
	for i := range resp.Users {
		if resp.Users[i].User.ID == testutil.User2.ID {
			user2 = &resp.Users[i]
		}
	}

	require.NotNil(t, user2)
	require.Equal(t, 0, user2.ProductivityScore)
	require.Equal(t, 0, user2.InitiativeStats.Total)
	require.Equal(t, 0, user2.RecentActivity.InitiativesCreated)
	require.Equal(t, int64(1), user2.TotalInitiatives)
}

func Test_statisticDomain_GetUserProductivity_UnknownPeriodFallsBackToAll(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain()

	resp, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{Period: "fortnight"})
	require.NoError(t, err)
	require.Equal(t, "all", resp.Period)
	require.Len(t, resp.Users, 3)
}

func Test_statisticDomain_GetUserProductivity_Limit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain()

	for i := 0; i < 2; i++ {
		_, err := testutil.SampleUser(ctx, nil)
		require.NoError(t, err)
	}

	// Five users in total, only the top two come back. Total still reports
	// the full matched set.
	resp, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{Limit: "2"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	require.Equal(t, 5, resp.Total)

	// An unparsable limit falls back to the default instead of failing.
	resp, err = domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{Limit: "many"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 5)

	// So do zero and negative limits.
	resp, err = domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{Limit: "0"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 5)

	resp, err = domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{Limit: "-3"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 5)
}

func Test_statisticDomain_GetUserProductivity_Filters(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain()

	resp, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{
		Department: "engineering",
		Role:       "member",
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	require.Len(t, resp.Users, 1)
	require.Equal(t, testutil.User2.ID, resp.Users[0].User.ID)
	require.Equal(t, "engineering", resp.Department)
	require.Equal(t, "member", resp.Role)
}

func Test_statisticDomain_GetUserProductivity_MixedStatuses(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newStatisticDomain()

	// One completed, one in progress at 40, one pending at 0.
	statuses := []struct {
		status   entity.InitiativeStatus
		progress int
	}{
		{entity.InitiativeStatusCompleted, 100},
		{entity.InitiativeStatusInProgress, 40},
		{entity.InitiativeStatusPending, 0},
	}

	for _, s := range statuses {
		_, err := testutil.SampleInitiative(ctx, &entity.Initiative{
			OwnerID:  testutil.User2.ID,
			Status:   s.status,
			Progress: s.progress,
		})
		require.NoError(t, err)
	}

	resp, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{Limit: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)

	top := resp.Users[0]
	require.Equal(t, testutil.User2.ID, top.User.ID)
	require.Equal(t, 3, top.InitiativeStats.Total)
	require.Equal(t, 1, top.InitiativeStats.Completed)
	require.Equal(t, 1, top.InitiativeStats.InProgress)
	require.Equal(t, 1, top.InitiativeStats.PendingOrPlanning)
	require.InDelta(t, 140.0/3.0, top.InitiativeStats.AvgProgress, 1e-9)

	// 0.4 * (1*10 + 1*5 + (140/3)*0.1) rounds to 8.
	require.Equal(t, 8, top.ProductivityScore)
	require.Equal(t, 3, top.RecentActivity.InitiativesCreated)
}

func Test_statisticDomain_GetUserProductivity_StableOrder(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newStatisticDomain()

	// Three users with one completed initiative each tie at the same score.
	// Ties keep user creation order.
	for _, id := range []string{"rank-a", "rank-b", "rank-c"} {
		user, err := testutil.SampleUser(ctx, &entity.User{Base: entity.Base{ID: id}})
		require.NoError(t, err)

		_, err = testutil.SampleInitiative(ctx, &entity.Initiative{
			OwnerID:  user.ID,
			Status:   entity.InitiativeStatusCompleted,
			Progress: 100,
		})
		require.NoError(t, err)
	}

	// A later-created user with a completed project outscores the tie and
	// must still rank first.
	topUser, err := testutil.SampleUser(ctx, &entity.User{Base: entity.Base{ID: "rank-z"}})
	require.NoError(t, err)

	_, err = testutil.SampleProject(ctx, &entity.Project{
		ManagerID: topUser.ID,
		Status:    entity.ProjectStatusCompleted,
		Progress:  100,
	})
	require.NoError(t, err)

	resp, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Users, 4)

	require.Equal(t, "rank-z", resp.Users[0].User.ID)
	require.Equal(t, 18, resp.Users[0].ProductivityScore)

	require.Equal(t, "rank-a", resp.Users[1].User.ID)
	require.Equal(t, "rank-b", resp.Users[2].User.ID)
	require.Equal(t, "rank-c", resp.Users[3].User.ID)
	require.Equal(t, 12, resp.Users[1].ProductivityScore)
	require.Equal(t, 12, resp.Users[2].ProductivityScore)
	require.Equal(t, 12, resp.Users[3].ProductivityScore)

	// A second call returns the exact same ranking.
	again, err := domain.GetUserProductivity(ctx, &model.GetUserProductivityRequest{})
	require.NoError(t, err)
	require.Len(t, again.Users, 4)
	for i := range resp.Users {
		require.Equal(t, resp.Users[i].User.ID, again.Users[i].User.ID)
		require.Equal(t, resp.Users[i].ProductivityScore, again.Users[i].ProductivityScore)
	}
}
