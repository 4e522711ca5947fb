package model

import "time"

// RequestEntity represents the requests table entity
type RequestEntity struct {
	ID          uint64    `db:"request_id" json:"requestId"`
	BookID      uint64    `db:"book_id" json:"bookId"`
	RequesterID uint64    `db:"requester_id" json:"requesterId"`
	RequestType string    `db:"request_type" json:"requestType"`
	Message     string    `db:"message" json:"message"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CreateRequestRequest for soliciting a listing
type CreateRequestRequest struct {
	BookID      uint64 `json:"bookId" validate:"required"`
	RequestType string `json:"requestType" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// ReceivedRequestItem is a request against one of the caller's books,
// joined with the requester identity and the book
type ReceivedRequestItem struct {
	RequestID      uint64    `db:"request_id" json:"requestId"`
	BookID         uint64    `db:"book_id" json:"bookId"`
	BookTitle      string    `db:"title" json:"bookTitle"`
	BookAuthor     string    `db:"author" json:"bookAuthor"`
	RequesterName  string    `db:"requester_name" json:"requesterName"`
	RequesterEmail string    `db:"requester_email" json:"requesterEmail"`
	RequestType    string    `db:"request_type" json:"requestType"`
	Message        string    `db:"message" json:"message"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// SentRequestItem is a request created by the caller, joined with the
// book and its owner identity
type SentRequestItem struct {
	RequestID   uint64    `db:"request_id" json:"requestId"`
	BookID      uint64    `db:"book_id" json:"bookId"`
	BookTitle   string    `db:"title" json:"bookTitle"`
	BookAuthor  string    `db:"author" json:"bookAuthor"`
	OwnerName   string    `db:"owner_name" json:"ownerName"`
	OwnerEmail  string    `db:"owner_email" json:"ownerEmail"`
	RequestType string    `db:"request_type" json:"requestType"`
	Message     string    `db:"message" json:"message"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// UpdateRequestStatusRequest sets a request's status
type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateRequestResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID uint64 `json:"request_id"`
}

type ReceivedRequestsResponse struct {
	Success  bool                  `json:"success"`
	Requests []ReceivedRequestItem `json:"requests"`
}

type SentRequestsResponse struct {
	Success  bool              `json:"success"`
	Requests []SentRequestItem `json:"requests"`
}

// BaseResponse is the minimal envelope for mutations and errors
type BaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
