package dto

// RegisterRequest payload for the one-time admin bootstrap.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest payload for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminView is the non-sensitive account projection.
type AdminView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is the exact login success shape consumed by the frontend.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Admin   AdminView `json:"admin"`
}
