package model

// User is an operator account for the login gate.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned on an admitted login.
type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
