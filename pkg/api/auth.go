package api

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	UserID    string `json:"UserID" binding:"required,max=16"`
	LastName  string `json:"LastName" binding:"required,max=100"`
	FirstName string `json:"FirstName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"Role"`
}

// AuthUser is the account summary returned on login.
type AuthUser struct {
	AccountID int64  `json:"accountId"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	User        AuthUser `json:"user"`
}
