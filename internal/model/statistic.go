package model

type UserActivityStats struct {
	Total             int     `json:"total"`
	Completed         int     `json:"completed"`
	InProgress        int     `json:"in_progress"`
	PendingOrPlanning int     `json:"pending_or_planning"`
	OnHold            int     `json:"on_hold"`
	AvgProgress       float64 `json:"avg_progress"`
}

type RecentActivity struct {
	InitiativesCreated int `json:"initiatives_created"`
	InitiativesUpdated int `json:"initiatives_updated"`
	ProjectsCreated    int `json:"projects_created"`
	ProjectsUpdated    int `json:"projects_updated"`
}

type UserProductivity struct {
	User              User              `json:"user"`
	DisplayName       string            `json:"display_name"`
	ProductivityScore int               `json:"productivity_score"`
	InitiativeStats   UserActivityStats `json:"initiative_stats"`
	ProjectStats      UserActivityStats `json:"project_stats"`
	RecentActivity    RecentActivity    `json:"recent_activity"`
	TotalInitiatives  int64             `json:"total_initiatives"`
	TotalProjects     int64             `json:"total_projects"`
	TeamMemberships   int64             `json:"team_memberships"`
}

type GetUserProductivityRequest struct {
	Period     string `json:"period"`
	Department string `json:"department"`
	Role       string `json:"role"`

	// Limit is kept as a raw string so an unparsable value falls back to
	// the default instead of failing the request.
	Limit string `json:"limit"`
}

type GetUserProductivityResponse struct {
	Users []UserProductivity `json:"users"`
	Total int                `json:"total"`

	Period     string `json:"period"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}
