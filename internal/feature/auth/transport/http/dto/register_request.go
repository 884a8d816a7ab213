// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the multipart form fields of the /register endpoint.
// The avatar and coverImage files travel separately in the multipart body.
type RegisterReq struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
}
