package model

type CreateInitiativeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	Priority    string `json:"priority"`
	TargetDate  string `json:"target_date"`
}

type CreateInitiativeResponse struct {
	ID string `json:"id"`
}

type GetInitiativeRequest struct {
	ID string `json:"id"`
}

type GetInitiativeResponse Initiative

type GetInitiativesRequest struct {
	OwnerID string `json:"owner_id"`
	Status  string `json:"status"`
	Q       string `json:"q"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

type GetInitiativesResponse struct {
	Initiatives []Initiative `json:"initiatives"`
}

type UpdateInitiativeRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    *int   `json:"progress"`
	Priority    string `json:"priority"`
	TargetDate  string `json:"target_date"`
}

type UpdateInitiativeResponse struct {
	Initiative Initiative `json:"initiative"`
}

type DeleteInitiativeRequest struct {
	ID string `json:"id"`
}

type DeleteInitiativeResponse struct{}
