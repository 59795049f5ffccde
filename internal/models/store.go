package models

import "time"

type Store struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"userId" db:"user_id"`
	Name             string    `json:"name" db:"name"`
	FrontEndStoreURL string    `json:"frontEndStoreUrl" db:"front_end_store_url"`
	StripeKey        string    `json:"stripeKey" db:"stripe_key"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// StoreInput is the writable part of a store, shared by create and update.
type StoreInput struct {
	Name             string `json:"name" validate:"required"`
	FrontEndStoreURL string `json:"frontEndStoreUrl" validate:"required,url"`
	StripeKey        string `json:"stripeKey" validate:"required,min=10"`
}
