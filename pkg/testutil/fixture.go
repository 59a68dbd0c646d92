package testutil

import (
	"context"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:       entity.Base{ID: "user1"},
		FirstName:  "Alice",
		LastName:   "Nguyen",
		Email:      "alice@example.com",
		Role:       entity.RoleAdmin,
		Department: "engineering",
		Status:     entity.UserStatusActive,
	}

	User2 = entity.User{
		Base:       entity.Base{ID: "user2"},
		FirstName:  "Bob",
		LastName:   "Tran",
		Email:      "bob@example.com",
		Role:       entity.RoleMember,
		Department: "engineering",
		Status:     entity.UserStatusActive,
	}

	User3 = entity.User{
		Base:       entity.Base{ID: "user3"},
		FirstName:  "Carol",
		LastName:   "Le",
		Email:      "carol@example.com",
		Role:       entity.RoleMember,
		Department: "design",
		Status:     entity.UserStatusActive,
	}

	Team1 = entity.Team{
		Base:       entity.Base{ID: "team1"},
		Name:       "Platform",
		Department: "engineering",
		CreatedBy:  User1.ID,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertTeams(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2, User3} {
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertTeams(ctx context.Context) {
	teamRepo := repository.NewTeamRepository()

	team := Team1
	if err := teamRepo.Create(ctx, &team); err != nil {
		panic(err)
	}

	err := teamRepo.AddMember(ctx, &entity.TeamMember{
		TeamID: Team1.ID,
		UserID: User1.ID,
		Role:   "leader",
	})
	if err != nil {
		panic(err)
	}

	err = teamRepo.AddMember(ctx, &entity.TeamMember{
		TeamID: Team1.ID,
		UserID: User2.ID,
		Role:   "member",
	})
	if err != nil {
		panic(err)
	}
}
