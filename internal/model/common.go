package model

type User struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	AvatarURL  string `json:"avatar_url"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type ShortUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

type Team struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Department   string    `json:"department"`
	CreatedBy    ShortUser `json:"created_by"`
	TotalMembers int64     `json:"total_members"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

type TeamMember struct {
	User     ShortUser `json:"user"`
	Role     string    `json:"role"`
	JoinedAt string    `json:"joined_at"`
}

type Initiative struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       ShortUser `json:"owner"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	Priority    string    `json:"priority"`
	TargetDate  string    `json:"target_date,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Manager     ShortUser `json:"manager"`
	TeamID      string    `json:"team_id,omitempty"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	Budget      float64   `json:"budget"`
	Deadline    string    `json:"deadline,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}
