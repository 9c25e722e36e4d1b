package models

import "time"

// Subscription is a newsletter subscription row. Email is unique; repeat
// subscriptions are rejected, unsubscription flips IsActive off.
type Subscription struct {
	SubscriptionID int64     `json:"id"`
	Email          string    `json:"email"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Subscription model.
func (s Subscription) TableName() string {
	return "newsletter_subscriptions"
}
