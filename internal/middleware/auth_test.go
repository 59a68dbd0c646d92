package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/testutil"
	"github.com/collabflow/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_Authenticate(t *testing.T) {
	ctx := testutil.MockContext()

	token, err := xcontext.TokenEngine(ctx).Generate(time.Minute, model.AccessToken{ID: "user1"})
	require.NoError(t, err)

	req := &http.Request{Header: http.Header{}}
	req.Header.Set("Authorization", "Bearer "+token)

	newCtx, err := Authenticate()(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))
}

func Test_Authenticate_Cookie(t *testing.T) {
	ctx := testutil.MockContext()

	token, err := xcontext.TokenEngine(ctx).Generate(time.Minute, model.AccessToken{ID: "user1"})
	require.NoError(t, err)

	req := &http.Request{Header: http.Header{}}
	req.AddCookie(&http.Cookie{
		Name:  xcontext.Configs(ctx).Auth.AccessToken.Name,
		Value: token,
	})

	newCtx, err := Authenticate()(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))
}

func Test_Authenticate_MissingOrInvalidToken(t *testing.T) {
	ctx := testutil.MockContext()

	req := &http.Request{Header: http.Header{}}
	_, err := Authenticate()(xcontext.WithHTTPRequest(ctx, req))
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	req = &http.Request{Header: http.Header{}}
	req.Header.Set("Authorization", "Bearer not-a-token")
	_, err = Authenticate()(xcontext.WithHTTPRequest(ctx, req))
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}
