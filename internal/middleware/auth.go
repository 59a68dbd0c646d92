package middleware

import (
	"context"
	"strings"

	"github.com/collabflow/backend/internal/model"
	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/router"
	"github.com/collabflow/backend/pkg/xcontext"
)

// Authenticate verifies the access token carried by the request and records
// the requesting user id in the context. The token is taken from the
// Authorization bearer header first, then from the access-token cookie.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := extractAccessToken(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "Not found any token")
		}

		var accessToken model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &accessToken); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func extractAccessToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	authorization := req.Header.Get("Authorization")
	if authorization != "" {
		if !strings.HasPrefix(authorization, "Bearer ") {
			return ""
		}

		return strings.TrimPrefix(authorization, "Bearer ")
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
