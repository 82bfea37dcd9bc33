package dto

import "github.com/google/uuid"

// Create payloads carry no owner/assignee field on purpose: the owner is
// always stamped from the verified caller, never taken from the body.

type CreateAccountRequest struct {
	Name     string  `json:"name"`
	Industry *string `json:"industry"`
	Website  *string `json:"website"`
}

type CreateContactRequest struct {
	FullName  string     `json:"full_name"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Title     *string    `json:"title"`
	Channel   *string    `json:"channel"`
	AccountID *uuid.UUID `json:"account_id"`
}

type CreateDealRequest struct {
	Title     string     `json:"title"`
	Stage     *string    `json:"stage"`
	Value     *float64   `json:"value"`
	Currency  *string    `json:"currency"`
	AccountID *uuid.UUID `json:"account_id"`
	ContactID *uuid.UUID `json:"contact_id"`
	Source    *string    `json:"source"`
}

// UpdateDealRequest uses pointer fields so "absent" and "set to zero value"
// stay distinguishable. Immutable columns (id, owner_id, created_at) are not
// representable here at all.
type UpdateDealRequest struct {
	Title     *string    `json:"title"`
	Stage     *string    `json:"stage"`
	Value     *float64   `json:"value"`
	Currency  *string    `json:"currency"`
	AccountID *uuid.UUID `json:"account_id"`
	ContactID *uuid.UUID `json:"contact_id"`
	Source    *string    `json:"source"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *string    `json:"due_date"`
	DealID      *uuid.UUID `json:"deal_id"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *string    `json:"due_date"`
	DealID      *uuid.UUID `json:"deal_id"`
}
