package domain

import "time"

// User is the domain entity for a user account.
// PasswordHash never leaves the service layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	AvatarURL    *string
	Bio          *string
	Location     *string
	GithubURL    *string
	LinkedinURL  *string
	WebsiteURL   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
