package model

import "time"

// BookEntity represents the books table entity
type BookEntity struct {
	ID               uint64    `db:"book_id" json:"id"`
	OwnerID          uint64    `db:"owner_id" json:"ownerId"`
	Title            string    `db:"title" json:"title"`
	Author           string    `db:"author" json:"author"`
	Condition        string    `db:"condition" json:"condition"`
	AvailabilityType string    `db:"availability_type" json:"availabilityType"`
	RentPrice        *int64    `db:"rent_price" json:"rentPrice"`
	SalePrice        *int64    `db:"sale_price" json:"salePrice"`
	Description      *string   `db:"description" json:"description"`
	Location         string    `db:"location" json:"location"`
	IsAvailable      bool      `db:"is_available" json:"isAvailable"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// BookPublicItem is a browseable listing joined with its owner
type BookPublicItem struct {
	ID               uint64  `db:"book_id" json:"id"`
	Title            string  `db:"title" json:"title"`
	Author           string  `db:"author" json:"author"`
	Condition        string  `db:"condition" json:"condition"`
	AvailabilityType string  `db:"availability_type" json:"availabilityType"`
	RentPrice        *int64  `db:"rent_price" json:"rentPrice"`
	SalePrice        *int64  `db:"sale_price" json:"salePrice"`
	Description      *string `db:"description" json:"description"`
	Location         string  `db:"location" json:"location"`
	Owner            string  `db:"owner_name" json:"owner"`
	OwnerID          uint64  `db:"owner_id" json:"ownerId"`
}

// BookOwnedItem is a listing as seen by its owner, availability included
type BookOwnedItem struct {
	ID               uint64  `db:"book_id" json:"id"`
	Title            string  `db:"title" json:"title"`
	Author           string  `db:"author" json:"author"`
	Condition        string  `db:"condition" json:"condition"`
	AvailabilityType string  `db:"availability_type" json:"availabilityType"`
	RentPrice        *int64  `db:"rent_price" json:"rentPrice"`
	SalePrice        *int64  `db:"sale_price" json:"salePrice"`
	Description      *string `db:"description" json:"description"`
	Location         string  `db:"location" json:"location"`
	IsAvailable      bool    `db:"is_available" json:"isAvailable"`
}

// BookSearchItem is a search hit joined with the owner display name
type BookSearchItem struct {
	ID               uint64  `db:"book_id" json:"id"`
	Title            string  `db:"title" json:"title"`
	Author           string  `db:"author" json:"author"`
	Condition        string  `db:"condition" json:"condition"`
	AvailabilityType string  `db:"availability_type" json:"availabilityType"`
	RentPrice        *int64  `db:"rent_price" json:"rentPrice"`
	SalePrice        *int64  `db:"sale_price" json:"salePrice"`
	Description      *string `db:"description" json:"description"`
	Location         string  `db:"location" json:"location"`
	Owner            string  `db:"owner_name" json:"owner"`
}

// CreateBookRequest for adding a listing
type CreateBookRequest struct {
	Title            string  `json:"title" validate:"required"`
	Author           string  `json:"author" validate:"required"`
	Condition        string  `json:"condition" validate:"required"`
	AvailabilityType string  `json:"availabilityType" validate:"required"`
	RentPrice        *int64  `json:"rentPrice"`
	SalePrice        *int64  `json:"salePrice"`
	Description      *string `json:"description"`
	Location         string  `json:"location" validate:"required"`
}

// UpdateBookRequest replaces every mutable field of a listing.
// IsAvailable defaults to true when omitted.
type UpdateBookRequest struct {
	Title            string  `json:"title" validate:"required"`
	Author           string  `json:"author" validate:"required"`
	Condition        string  `json:"condition" validate:"required"`
	AvailabilityType string  `json:"availabilityType" validate:"required"`
	RentPrice        *int64  `json:"rentPrice"`
	SalePrice        *int64  `json:"salePrice"`
	Description      *string `json:"description"`
	IsAvailable      *bool   `json:"isAvailable"`
}

type CreateBookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BookID  uint64 `json:"book_id"`
}

type PublicBooksResponse struct {
	Success bool             `json:"success"`
	Books   []BookPublicItem `json:"books"`
}

type MyBooksResponse struct {
	Success bool            `json:"success"`
	Books   []BookOwnedItem `json:"books"`
}

type SearchBooksResponse struct {
	Success bool             `json:"success"`
	Books   []BookSearchItem `json:"books"`
}
