package dto

// LoginReq represents the request body for the /login endpoint.
// Either username or email must be present; the handler enforces that,
// since binding tags cannot express "one of".
type LoginReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}
