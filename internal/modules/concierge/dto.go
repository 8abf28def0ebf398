package concierge

type RecommendRequest struct {
	Location   string `json:"location"`
	PickupDate string `json:"pickup_date" binding:"required"`
	ReturnDate string `json:"return_date" binding:"required"`
}

type AskRequest struct {
	Query string `json:"query" binding:"required"`
}
