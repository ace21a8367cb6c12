package identity

// LoginInput carries the admin credentials
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminInfo is the admin reference returned after a successful login
type AdminInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
