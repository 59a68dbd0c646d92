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

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.ID, resp.ID)
	require.Equal(t, testutil.User2.Email, resp.Email)
}

func Test_userDomain_GetUsers(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.GetUsers(ctx, &model.GetUsersRequest{
		Department: "engineering",
		Limit:      10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	require.EqualValues(t, 3, resp.Total)

	// Exceeding the configured maximum is rejected.
	_, err = domain.GetUsers(ctx, &model.GetUsersRequest{Limit: 51})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// A zero limit picks up the configured default of one.
	resp, err = domain.GetUsers(ctx, &model.GetUsersRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	require.EqualValues(t, 3, resp.Total)
}

func Test_userDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewUserDomain(repository.NewUserRepository())

	// Users can update their own profile.
	memberCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := domain.Update(memberCtx, &model.UpdateUserRequest{FirstName: "Robert"})
	require.NoError(t, err)
	require.Equal(t, "Robert", resp.User.FirstName)

	// A member cannot update someone else.
	_, err = domain.Update(memberCtx, &model.UpdateUserRequest{
		ID:        testutil.User3.ID,
		FirstName: "Eve",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// Nor change their own status.
	_, err = domain.Update(memberCtx, &model.UpdateUserRequest{Status: "inactive"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// An admin can do both.
	adminCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err = domain.Update(adminCtx, &model.UpdateUserRequest{
		ID:     testutil.User2.ID,
		Status: "inactive",
	})
	require.NoError(t, err)
	require.Equal(t, "inactive", resp.User.Status)

	// But not set a status outside of the enum.
	_, err = domain.Update(adminCtx, &model.UpdateUserRequest{
		ID:     testutil.User2.ID,
		Status: "suspended",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_userDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewUserDomain(repository.NewUserRepository())

	// Members cannot delete users.
	memberCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := domain.Delete(memberCtx, &model.DeleteUserRequest{ID: testutil.User3.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// Admins cannot delete themselves.
	adminCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = domain.Delete(adminCtx, &model.DeleteUserRequest{ID: testutil.User1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// Admins can delete other users.
	_, err = domain.Delete(adminCtx, &model.DeleteUserRequest{ID: testutil.User3.ID})
	require.NoError(t, err)

	_, err = domain.GetUser(adminCtx, &model.GetUserRequest{ID: testutil.User3.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
