package domain

import "time"

// Follow is a directed follower relationship. One per (follower, following).
type Follow struct {
	ID          int64
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}
