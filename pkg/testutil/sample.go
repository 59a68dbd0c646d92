package testutil

import (
	"context"
	"reflect"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/repository"
	"github.com/google/uuid"
)

// SampleUser creates a new user in database with many fields are randomized.
// The sample user can be overwritten by non-zero fields of init.
//
// This function returns the sample user.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		FirstName:      uuid.NewString(),
		LastName:       uuid.NewString(),
		Email:          uuid.NewString() + "@example.com",
		HashedPassword: uuid.NewString(),
		Role:           entity.RoleMember,
		Status:         entity.UserStatusActive,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleTeam(ctx context.Context, init *entity.Team) (entity.Team, error) {
	teamRepo := repository.NewTeamRepository()

	sample := &entity.Team{
		Base:      entity.Base{ID: uuid.NewString()},
		Name:      uuid.NewString(),
		CreatedBy: uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := teamRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleInitiative(ctx context.Context, init *entity.Initiative) (entity.Initiative, error) {
	initiativeRepo := repository.NewInitiativeRepository()

	sample := &entity.Initiative{
		Base:    entity.Base{ID: uuid.NewString()},
		Title:   uuid.NewString(),
		OwnerID: uuid.NewString(),
		Status:  entity.InitiativeStatusPending,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := initiativeRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleProject(ctx context.Context, init *entity.Project) (entity.Project, error) {
	projectRepo := repository.NewProjectRepository()

	sample := &entity.Project{
		Base:      entity.Base{ID: uuid.NewString()},
		Name:      uuid.NewString(),
		ManagerID: uuid.NewString(),
		Status:    entity.ProjectStatusPlanning,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := projectRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
