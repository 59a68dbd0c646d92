package model

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TeamID      string  `json:"team_id"`
	Status      string  `json:"status"`
	Progress    int     `json:"progress"`
	Budget      float64 `json:"budget"`
	Deadline    string  `json:"deadline"`
}

type CreateProjectResponse struct {
	ID string `json:"id"`
}

type GetProjectRequest struct {
	ID string `json:"id"`
}

type GetProjectResponse Project

type GetProjectsRequest struct {
	ManagerID string `json:"manager_id"`
	TeamID    string `json:"team_id"`
	Status    string `json:"status"`
	Q         string `json:"q"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type GetProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type UpdateProjectRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TeamID      string   `json:"team_id"`
	Status      string   `json:"status"`
	Progress    *int     `json:"progress"`
	Budget      *float64 `json:"budget"`
	Deadline    string   `json:"deadline"`
}

type UpdateProjectResponse struct {
	Project Project `json:"project"`
}

type DeleteProjectRequest struct {
	ID string `json:"id"`
}

type DeleteProjectResponse struct{}
