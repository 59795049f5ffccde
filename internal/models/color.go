package models

import "time"

type Color struct {
	ID        string    `json:"id" db:"id"`
	StoreID   string    `json:"storeId" db:"store_id"`
	Name      string    `json:"name" db:"name"`
	Value     string    `json:"value" db:"value"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ColorInput accepts any value written in hex notation, e.g. "#fff" or "#1e90ff".
type ColorInput struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required,hexcolor_prefix"`
}
