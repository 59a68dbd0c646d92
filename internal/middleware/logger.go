package middleware

import (
	"context"
	"errors"

	"github.com/collabflow/backend/pkg/errorx"
	"github.com/collabflow/backend/pkg/router"
	"github.com/collabflow/backend/pkg/xcontext"
)

// Logger writes an access line for every finished request. Client errors are
// logged at debug level, unexpected ones at warning.
func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		log := xcontext.Logger(ctx)

		err := xcontext.Error(ctx)
		if err == nil {
			log.Infof("%s %s", req.Method, req.URL.Path)
			return
		}

		var errx errorx.Error
		if errors.As(err, &errx) && errx.Code != errorx.Unknown.Code {
			log.Debugf("%s %s: %v", req.Method, req.URL.Path, err)
			return
		}

		log.Warnf("%s %s: %v", req.Method, req.URL.Path, err)
	}
}
