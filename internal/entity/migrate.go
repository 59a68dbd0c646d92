package entity

import (
	"context"

	"github.com/collabflow/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&RefreshToken{},
		&Team{},
		&TeamMember{},
		&Initiative{},
		&Project{},
	)
}
