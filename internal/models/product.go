package models

import "time"

type Product struct {
	ID         string          `json:"id" db:"id"`
	StoreID    string          `json:"storeId" db:"store_id"`
	CategoryID string          `json:"categoryId" db:"category_id"`
	ColorID    string          `json:"colorId" db:"color_id"`
	SizeID     string          `json:"sizeId" db:"size_id"`
	Name       string          `json:"name" db:"name"`
	Price      float64         `json:"price" db:"price"`
	IsFeatured bool            `json:"isFeatured" db:"is_featured"`
	IsArchived bool            `json:"isArchived" db:"is_archived"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt" db:"updated_at"`
	Images     []*ProductImage `json:"images" db:"-"`
	Category   *Category       `json:"category,omitempty" db:"-"`
	Color      *Color          `json:"color,omitempty" db:"-"`
	Size       *Size           `json:"size,omitempty" db:"-"`
}

type ProductInput struct {
	Name       string              `json:"name" validate:"required"`
	Price      *float64            `json:"price" validate:"required,gt=0,lt=10000000000,cents"`
	CategoryID string              `json:"categoryId" validate:"required"`
	ColorID    string              `json:"colorId" validate:"required"`
	SizeID     string              `json:"sizeId" validate:"required"`
	IsFeatured bool                `json:"isFeatured"`
	IsArchived bool                `json:"isArchived"`
	Images     []ProductImageInput `json:"images" validate:"required,min=1,dive"`
}

// ProductFilter narrows the storefront product listing.
type ProductFilter struct {
	CategoryID string `query:"categoryId"`
	ColorID    string `query:"colorId"`
	SizeID     string `query:"sizeId"`
	IsFeatured *bool  `query:"isFeatured"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
	// IncludeArchived is set internally for owner exports, never from the query string.
	IncludeArchived bool `query:"-"`
}
