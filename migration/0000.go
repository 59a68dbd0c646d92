package migration

import (
	"context"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/pkg/xcontext"
)

// migrate0000 will create the database with the first released version.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.RefreshToken{},
		&entity.Team{},
		&entity.TeamMember{},
		&entity.Initiative{},
		&entity.Project{},
	)
}
