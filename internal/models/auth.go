package models

// LoginRequest carries the admin credentials posted to /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// CategoryRequest is the payload for creating a category.
type CategoryRequest struct {
	Name string `json:"name"`
}
