package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required,eq=admin"`
	Password string `json:"password" validate:"required,min=1"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
