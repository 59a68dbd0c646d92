package xcontext

import (
	"context"
	"net/http"

	"github.com/collabflow/backend/config"
	"github.com/collabflow/backend/pkg/authenticator"
	"github.com/collabflow/backend/pkg/logger"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"
)

type (
	dbKey           struct{}
	txKey           struct{}
	loggerKey       struct{}
	configsKey      struct{}
	tokenEngineKey  struct{}
	sessionStoreKey struct{}
	httpRequestKey  struct{}
	httpWriterKey   struct{}
	userIDKey       struct{}
	responseKey     struct{}
	errorKey        struct{}
)

// txHolder keeps the transaction state mutable across the context chain, so
// commit and rollback observed by deferred calls refer to the same object.
type txHolder struct {
	tx   *gorm.DB
	done bool
}

type valueHolder struct {
	value any
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

func DB(ctx context.Context) *gorm.DB {
	if holder, ok := ctx.Value(txKey{}).(*txHolder); ok && !holder.done {
		return holder.tx
	}

	return ctx.Value(dbKey{}).(*gorm.DB)
}

func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, &txHolder{tx: DB(ctx).Begin()})
}

func WithCommitDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(txKey{}).(*txHolder)
	if ok && !holder.done {
		holder.tx.Commit()
		holder.done = true
	}
}

func WithRollbackDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(txKey{}).(*txHolder)
	if ok && !holder.done {
		holder.tx.Rollback()
		holder.done = true
	}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey{}).(logger.Logger)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine)
}

func WithSessionStore(ctx context.Context, store sessions.Store) context.Context {
	return context.WithValue(ctx, sessionStoreKey{}, store)
}

func SessionStore(ctx context.Context) sessions.Store {
	return ctx.Value(sessionStoreKey{}).(sessions.Store)
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	return ctx.Value(httpRequestKey{}).(*http.Request)
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	return ctx.Value(httpWriterKey{}).(http.ResponseWriter)
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}

	return ""
}

// WithResponse allocates a mutable response slot. The router calls this once
// per request, then handlers and closers share the slot via SetResponse and
// Response.
func WithResponse(ctx context.Context) context.Context {
	return context.WithValue(ctx, responseKey{}, &valueHolder{})
}

func SetResponse(ctx context.Context, resp any) {
	if holder, ok := ctx.Value(responseKey{}).(*valueHolder); ok {
		holder.value = resp
	}
}

func Response(ctx context.Context) any {
	if holder, ok := ctx.Value(responseKey{}).(*valueHolder); ok {
		return holder.value
	}

	return nil
}

func WithError(ctx context.Context) context.Context {
	return context.WithValue(ctx, errorKey{}, &valueHolder{})
}

func SetError(ctx context.Context, err error) {
	if holder, ok := ctx.Value(errorKey{}).(*valueHolder); ok {
		holder.value = err
	}
}

func Error(ctx context.Context) error {
	if holder, ok := ctx.Value(errorKey{}).(*valueHolder); ok && holder.value != nil {
		return holder.value.(error)
	}

	return nil
}
