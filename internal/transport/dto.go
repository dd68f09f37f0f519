package transport

type CreateUserRequest struct {
	Username        string `json:"username"        validate:"required"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ModifyCartRequest struct {
	Username string `json:"username" validate:"required"`
	ItemID   uint   `json:"itemId"`
	Quantity int    `json:"quantity"`
}
