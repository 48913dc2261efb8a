package responsebody

type Message struct {
	Message string `json:"message"`
}

// swagger:model ErrorResponse
type Error struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"Invalid column 'nmae'. Valid: Id, Name, Category"`
}
