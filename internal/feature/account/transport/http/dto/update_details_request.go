// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// UpdateDetailsReq represents the request body for PATCH /update-details.
type UpdateDetailsReq struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}
