package domain

import (
	"testing"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/testutil"
	"github.com/collabflow/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newInitiativeDomain() InitiativeDomain {
	return NewInitiativeDomain(
		repository.NewInitiativeRepository(),
		repository.NewUserRepository(),
	)
}

func Test_initiativeDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newInitiativeDomain()

	resp, err := domain.Create(ctx, &model.CreateInitiativeRequest{
		Title:      "Reduce build times",
		Priority:   "high",
		TargetDate: "2026-12-31T00:00:00Z",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	got, err := domain.Get(ctx, &model.GetInitiativeRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, "Reduce build times", got.Title)
	require.Equal(t, "pending", got.Status)
	require.Equal(t, 0, got.Progress)
	require.Equal(t, testutil.User2.ID, got.Owner.ID)

	// The title is required.
	_, err = domain.Create(ctx, &model.CreateInitiativeRequest{})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// Statuses outside of the enum are rejected.
	_, err = domain.Create(ctx, &model.CreateInitiativeRequest{
		Title:  "Bad status",
		Status: "archived",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// So is an out-of-range progress.
	_, err = domain.Create(ctx, &model.CreateInitiativeRequest{
		Title:    "Bad progress",
		Progress: 101,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_initiativeDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newInitiativeDomain()

	for i := 0; i < 3; i++ {
		status := entity.InitiativeStatusPending
		if i == 0 {
			status = entity.InitiativeStatusCompleted
		}

		_, err := testutil.SampleInitiative(ctx, &entity.Initiative{
			OwnerID: testutil.User2.ID,
			Status:  status,
		})
		require.NoError(t, err)
	}

	resp, err := domain.GetList(ctx, &model.GetInitiativesRequest{
		OwnerID: testutil.User2.ID,
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Initiatives, 3)

	resp, err = domain.GetList(ctx, &model.GetInitiativesRequest{
		OwnerID: testutil.User2.ID,
		Status:  "completed",
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Initiatives, 1)

	_, err = domain.GetList(ctx, &model.GetInitiativesRequest{Status: "archived", Limit: 10})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_initiativeDomain_UpdateByID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newInitiativeDomain()

	initiative, err := testutil.SampleInitiative(ctx, &entity.Initiative{
		OwnerID: testutil.User2.ID,
		Status:  entity.InitiativeStatusInProgress,
	})
	require.NoError(t, err)

	// Only the owner or an admin can update.
	otherCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = domain.UpdateByID(otherCtx, &model.UpdateInitiativeRequest{
		ID:     initiative.ID,
		Status: "completed",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// Completing without an explicit progress forces it to 100.
	ownerCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := domain.UpdateByID(ownerCtx, &model.UpdateInitiativeRequest{
		ID:     initiative.ID,
		Status: "completed",
	})
	require.NoError(t, err)
	require.Equal(t, "completed", resp.Initiative.Status)
	require.Equal(t, 100, resp.Initiative.Progress)

	// An admin can update someone else's initiative.
	adminCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err = domain.UpdateByID(adminCtx, &model.UpdateInitiativeRequest{
		ID:       initiative.ID,
		Priority: "low",
	})
	require.NoError(t, err)
	require.Equal(t, "low", resp.Initiative.Priority)
}

func Test_initiativeDomain_DeleteByID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newInitiativeDomain()

	initiative, err := testutil.SampleInitiative(ctx, &entity.Initiative{
		OwnerID: testutil.User2.ID,
	})
	require.NoError(t, err)

	otherCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = domain.DeleteByID(otherCtx, &model.DeleteInitiativeRequest{ID: initiative.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	ownerCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = domain.DeleteByID(ownerCtx, &model.DeleteInitiativeRequest{ID: initiative.ID})
	require.NoError(t, err)

	_, err = domain.Get(ownerCtx, &model.GetInitiativeRequest{ID: initiative.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
