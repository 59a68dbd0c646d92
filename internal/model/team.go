package model

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

type CreateTeamResponse struct {
	ID string `json:"id"`
}

type GetTeamRequest struct {
	ID string `json:"id"`
}

type GetTeamResponse Team

type GetTeamsRequest struct {
	Department string `json:"department"`
	Q          string `json:"q"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetTeamsResponse struct {
	Teams []Team `json:"teams"`
}

type UpdateTeamRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

type UpdateTeamResponse struct {
	Team Team `json:"team"`
}

type DeleteTeamRequest struct {
	ID string `json:"id"`
}

type DeleteTeamResponse struct{}

type AddTeamMemberRequest struct {
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type AddTeamMemberResponse struct{}

type RemoveTeamMemberRequest struct {
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
}

type RemoveTeamMemberResponse struct{}

type GetTeamMembersRequest struct {
	TeamID string `json:"team_id"`
}

type GetTeamMembersResponse struct {
	Members []TeamMember `json:"members"`
}
