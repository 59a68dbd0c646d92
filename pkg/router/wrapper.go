package router

import (
	"context"
	"net/http"

	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = xcontext.WithHTTPRequest(ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)
		ctx = xcontext.WithSessionStore(ctx, router.sessionStore)
		ctx = xcontext.WithResponse(ctx)
		ctx = xcontext.WithError(ctx)

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		func() {
			if r.Method != method {
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Not supported method %s", r.Method))
				return
			}

			var err error
			if ctx, err = runMiddlewares(ctx, router.befores); err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			var req Request
			if err := bindRequest(r, method, &req); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Invalid request"))
				return
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			xcontext.SetResponse(ctx, resp)
			if ctx, err = runMiddlewares(ctx, router.afters); err != nil {
				xcontext.SetError(ctx, err)
				return
			}
		}()

		handleResponse(ctx)
	}
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, m := range middlewares {
		newCtx, err := m(ctx)
		if err != nil {
			return ctx, err
		}

		if newCtx != nil {
			ctx = newCtx
		}
	}

	return ctx, nil
}
