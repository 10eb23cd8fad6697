package dto

import (
	"time"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=30"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Bio      *string `json:"bio" binding:"omitempty,max=500"`
	Location *string `json:"location" binding:"omitempty,max=120"`
}

// UserResponse is the public projection of a user. It never carries the password hash.
type UserResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	AvatarURL   *string   `json:"avatar_url"`
	Bio         *string   `json:"bio"`
	Location    *string   `json:"location"`
	GithubURL   *string   `json:"github_url"`
	LinkedinURL *string   `json:"linkedin_url"`
	WebsiteURL  *string   `json:"website_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// UserListResponse is a paginated page of users.
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// FollowListResponse is an unpaginated list of users (followers or following).
type FollowListResponse struct {
	Items []UserResponse `json:"items"`
}

// FollowResponse reports the toggle outcome of POST /users/{id}/follow.
type FollowResponse struct {
	Following bool `json:"following"`
}

// UserToResponse maps a domain user to its public projection.
func UserToResponse(u dom.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		Location:    u.Location,
		GithubURL:   u.GithubURL,
		LinkedinURL: u.LinkedinURL,
		WebsiteURL:  u.WebsiteURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UsersToResponses maps a slice of domain users.
func UsersToResponses(list []dom.User) []UserResponse {
	out := make([]UserResponse, len(list))
	for i := range list {
		out[i] = UserToResponse(list[i])
	}
	return out
}
