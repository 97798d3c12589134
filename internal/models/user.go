package models

import "time"

type UserPlan string

const (
	UserPlanFree       UserPlan = "Free"
	UserPlanPro        UserPlan = "Pro"
	UserPlanEnterprise UserPlan = "Enterprise"
)

const DefaultAvatar = "/placeholder.svg?height=40&width=40"

type User struct {
	ID            string
	Email         string
	PasswordHash  []byte
	FirstName     string
	LastName      string
	Avatar        string
	Plan          UserPlan
	IsActive      bool
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Session is an opaque-token login session. The sessions table is the sole
// authority on validity: a session is valid iff the row exists and has not
// passed ExpiresAt. The cookie only carries the token.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
