package models

import "time"

type Billboard struct {
	ID        string    `json:"id" db:"id"`
	StoreID   string    `json:"storeId" db:"store_id"`
	Label     string    `json:"label" db:"label"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type BillboardInput struct {
	Label    string `json:"label" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}
