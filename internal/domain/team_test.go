package domain

import (
	"testing"

	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/testutil"
	"github.com/collabflow/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTeamDomain() TeamDomain {
	return NewTeamDomain(
		repository.NewTeamRepository(),
		repository.NewUserRepository(),
	)
}

func Test_teamDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTeamDomain()

	resp, err := domain.Create(ctx, &model.CreateTeamRequest{
		Name:       "Growth",
		Department: "marketing",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	// The creator joined the team as its leader.
	members, err := domain.GetMembers(ctx, &model.GetTeamMembersRequest{TeamID: resp.ID})
	require.NoError(t, err)
	require.Len(t, members.Members, 1)
	require.Equal(t, testutil.User2.ID, members.Members[0].User.ID)
	require.Equal(t, "leader", members.Members[0].Role)

	// Team names are unique.
	_, err = domain.Create(ctx, &model.CreateTeamRequest{Name: "Growth"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_teamDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTeamDomain()

	resp, err := domain.Get(ctx, &model.GetTeamRequest{ID: testutil.Team1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Team1.Name, resp.Name)
	require.Equal(t, testutil.User1.ID, resp.CreatedBy.ID)
	require.Equal(t, int64(2), resp.TotalMembers)

	_, err = domain.Get(ctx, &model.GetTeamRequest{ID: "no-such-team"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_teamDomain_MemberManagement(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTeamDomain()

	// A regular member cannot manage the team.
	memberCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := domain.AddMember(memberCtx, &model.AddTeamMemberRequest{
		TeamID: testutil.Team1.ID,
		UserID: testutil.User3.ID,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// The creator can.
	creatorCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = domain.AddMember(creatorCtx, &model.AddTeamMemberRequest{
		TeamID: testutil.Team1.ID,
		UserID: testutil.User3.ID,
	})
	require.NoError(t, err)

	// Adding twice is rejected.
	_, err = domain.AddMember(creatorCtx, &model.AddTeamMemberRequest{
		TeamID: testutil.Team1.ID,
		UserID: testutil.User3.ID,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	members, err := domain.GetMembers(creatorCtx, &model.GetTeamMembersRequest{TeamID: testutil.Team1.ID})
	require.NoError(t, err)
	require.Len(t, members.Members, 3)

	_, err = domain.RemoveMember(creatorCtx, &model.RemoveTeamMemberRequest{
		TeamID: testutil.Team1.ID,
		UserID: testutil.User3.ID,
	})
	require.NoError(t, err)

	// Removing a non-member is rejected.
	_, err = domain.RemoveMember(creatorCtx, &model.RemoveTeamMemberRequest{
		TeamID: testutil.Team1.ID,
		UserID: testutil.User3.ID,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_teamDomain_UpdateAndDelete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTeamDomain()

	creatorCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := domain.UpdateByID(creatorCtx, &model.UpdateTeamRequest{
		ID:          testutil.Team1.ID,
		Description: "Owns the deployment platform",
	})
	require.NoError(t, err)
	require.Equal(t, "Owns the deployment platform", resp.Team.Description)
	require.Equal(t, testutil.Team1.Name, resp.Team.Name)

	_, err = domain.DeleteByID(creatorCtx, &model.DeleteTeamRequest{ID: testutil.Team1.ID})
	require.NoError(t, err)

	_, err = domain.Get(creatorCtx, &model.GetTeamRequest{ID: testutil.Team1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
