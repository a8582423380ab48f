package store

import (
	"time"

	"github.com/google/uuid"
)

// User is an auth-server account
type User struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Username         string    `db:"username" json:"username"`
	PasswordHash     string    `db:"password_hash" json:"-"`
	Role             string    `db:"role" json:"role"`
	RefreshTokenHash *string   `db:"refresh_token_hash" json:"-"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// LoginLog records one successful login
type LoginLog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Username  string    `db:"username" json:"username"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Event is a campaign definition with a claim condition
type Event struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Condition   string    `db:"condition" json:"condition"`
	StartDate   time.Time `db:"start_date" json:"startDate"`
	EndDate     time.Time `db:"end_date" json:"endDate"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// EventTitle is the projection served by the titles listing
type EventTitle struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Title string    `db:"title" json:"title"`
}

// Reward is a payout definition attached to an event
type Reward struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EventID     uuid.UUID `db:"event_id" json:"eventId"`
	Type        string    `db:"type" json:"type"`
	Value       string    `db:"value" json:"value"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Invite records that one user invited another
type Invite struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Inviter   string    `db:"inviter" json:"inviter"`
	Invited   string    `db:"invited" json:"invited"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// RewardRequest is one user's claim attempt against one event
type RewardRequest struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	EventID   uuid.UUID  `db:"event_id" json:"eventId"`
	Status    string     `db:"status" json:"status"`
	Reason    *string    `db:"reason" json:"reason,omitempty"`
	ClaimDay  *time.Time `db:"claim_day" json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}
