package domain

import (
	"testing"
	"time"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/crypto"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/testutil"
	"github.com/collabflow/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newAuthDomain() AuthDomain {
	return NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
	)
}

func Test_authDomain_SignUp(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAuthDomain()

	resp, err := domain.SignUp(ctx, &model.SignUpRequest{
		FirstName:  "Dave",
		LastName:   "Pham",
		Email:      "Dave@Example.com",
		Password:   "super-secret",
		Department: "engineering",
	})
	require.NoError(t, err)
	require.Equal(t, "dave@example.com", resp.User.Email)
	require.Equal(t, "member", resp.User.Role)
	require.Equal(t, "active", resp.User.Status)

	// The same email cannot register twice.
	_, err = domain.SignUp(ctx, &model.SignUpRequest{
		FirstName: "Dave",
		LastName:  "Pham",
		Email:     "dave@example.com",
		Password:  "super-secret",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	// A short password is rejected.
	_, err = domain.SignUp(ctx, &model.SignUpRequest{
		FirstName: "Eve",
		LastName:  "Vo",
		Email:     "eve@example.com",
		Password:  "short",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAuthDomain()

	_, err := domain.SignUp(ctx, &model.SignUpRequest{
		FirstName: "Dave",
		LastName:  "Pham",
		Email:     "dave@example.com",
		Password:  "super-secret",
	})
	require.NoError(t, err)

	resp, err := domain.Login(ctx, &model.LoginRequest{
		Email:    "dave@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	accessToken := model.AccessToken{}
	err = xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, accessToken.ID)
	require.Equal(t, "dave@example.com", accessToken.Email)

	// A wrong password never reveals whether the account exists.
	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "dave@example.com",
		Password: "wrong-password",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "super-secret",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_Login_InactiveUser(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAuthDomain()

	hashedPassword, err := crypto.HashPassword("super-secret")
	require.NoError(t, err)

	_, err = testutil.SampleUser(ctx, &entity.User{
		Email:          "frank@example.com",
		HashedPassword: hashedPassword,
		Status:         entity.UserStatusInactive,
	})
	require.NoError(t, err)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "frank@example.com",
		Password: "super-secret",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newAuthDomain()

	refreshTokenObj := model.RefreshToken{
		Family:  "Foo",
		Counter: 0,
	}

	refreshTokenRepo := repository.NewRefreshTokenRepository()
	err := refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     testutil.User1.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, refreshTokenObj)
	require.NoError(t, err)

	// Successfully for the first refresh.
	resp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)

	// Verify access token.
	accessToken := model.AccessToken{}
	err = xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, accessToken.ID)

	// Detect stolen for the second refresh, the refresh token will be deleted after this call.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	require.Equal(t, "Your refresh token will be revoked because it is detected as stolen", err.Error())

	// Not found refresh token for the third refresh.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	require.Equal(t, "Request failed", err.Error())
}

func Test_authDomain_Refresh_Expired(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newAuthDomain()

	refreshTokenObj := model.RefreshToken{Family: "Bar", Counter: 0}

	refreshTokenRepo := repository.NewRefreshTokenRepository()
	err := refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     testutil.User1.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, refreshTokenObj)
	require.NoError(t, err)

	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.TokenExpired, errx.Code)
}
