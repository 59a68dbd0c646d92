package model

type GetMeRequest struct{}

type GetMeResponse User

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse User

type GetUsersRequest struct {
	Department string `json:"department"`
	Role       string `json:"role"`
	Q          string `json:"q"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetUsersResponse struct {
	Users []User `json:"users"`

	// Total counts every registered user, ignoring filters and pagination.
	Total int64 `json:"total"`
}

type UpdateUserRequest struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	AvatarURL  string `json:"avatar_url"`
	Status     string `json:"status"`
}

type UpdateUserResponse struct {
	User User `json:"user"`
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

type DeleteUserResponse struct{}
