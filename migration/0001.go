package migration

import (
	"context"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/pkg/xcontext"
)

func migrate0001(ctx context.Context) error {
	migrator := xcontext.DB(ctx).Migrator()

	if !migrator.HasColumn(&entity.User{}, "avatar_url") {
		if err := migrator.AddColumn(&entity.User{}, "avatar_url"); err != nil {
			return err
		}
	}

	if !migrator.HasColumn(&entity.Project{}, "budget") {
		if err := migrator.AddColumn(&entity.Project{}, "budget"); err != nil {
			return err
		}
	}

	return nil
}
