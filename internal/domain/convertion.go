package domain

import (
	"time"

	"github.com/collabflow/backend/internal/entity"
	"github.com/collabflow/backend/internal/model"
)

const defaultTimeLayout string = time.RFC3339Nano

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Role:       string(user.Role),
		Department: user.Department,
		AvatarURL:  user.AvatarURL,
		Status:     string(user.Status),
		CreatedAt:  user.CreatedAt.Format(defaultTimeLayout),
		UpdatedAt:  user.UpdatedAt.Format(defaultTimeLayout),
	}
}

func convertShortUser(user *entity.User) model.ShortUser {
	if user == nil {
		return model.ShortUser{}
	}

	return model.ShortUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
	}
}

func convertTeam(team *entity.Team, totalMembers int64) model.Team {
	if team == nil {
		return model.Team{}
	}

	return model.Team{
		ID:           team.ID,
		Name:         team.Name,
		Description:  team.Description,
		Department:   team.Department,
		CreatedBy:    convertShortUser(&team.CreatedByUser),
		TotalMembers: totalMembers,
		CreatedAt:    team.CreatedAt.Format(defaultTimeLayout),
		UpdatedAt:    team.UpdatedAt.Format(defaultTimeLayout),
	}
}

func convertTeamMember(member *entity.TeamMember) model.TeamMember {
	if member == nil {
		return model.TeamMember{}
	}

	return model.TeamMember{
		User:     convertShortUser(&member.User),
		Role:     member.Role,
		JoinedAt: member.CreatedAt.Format(defaultTimeLayout),
	}
}

func convertInitiative(initiative *entity.Initiative) model.Initiative {
	if initiative == nil {
		return model.Initiative{}
	}

	targetDate := ""
	if initiative.TargetDate.Valid {
		targetDate = initiative.TargetDate.Time.Format(defaultTimeLayout)
	}

	return model.Initiative{
		ID:          initiative.ID,
		Title:       initiative.Title,
		Description: initiative.Description,
		Owner:       convertShortUser(&initiative.Owner),
		Status:      string(initiative.Status),
		Progress:    initiative.Progress,
		Priority:    initiative.Priority,
		TargetDate:  targetDate,
		CreatedAt:   initiative.CreatedAt.Format(defaultTimeLayout),
		UpdatedAt:   initiative.UpdatedAt.Format(defaultTimeLayout),
	}
}

func convertProject(project *entity.Project) model.Project {
	if project == nil {
		return model.Project{}
	}

	deadline := ""
	if project.Deadline.Valid {
		deadline = project.Deadline.Time.Format(defaultTimeLayout)
	}

	return model.Project{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Manager:     convertShortUser(&project.Manager),
		TeamID:      project.TeamID.String,
		Status:      string(project.Status),
		Progress:    project.Progress,
		Budget:      project.Budget,
		Deadline:    deadline,
		CreatedAt:   project.CreatedAt.Format(defaultTimeLayout),
		UpdatedAt:   project.UpdatedAt.Format(defaultTimeLayout),
	}
}
