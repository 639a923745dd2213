package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AdvertiserStatusActive   = "active"
	AdvertiserStatusInactive = "inactive"
)

// Advertiser is a sponsor buying ad slots across the network.
// swagger:model Advertiser
type Advertiser struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	CompanyName   string    `json:"company_name" db:"company_name"`
	ContactPerson string    `json:"contact_person" db:"contact_person"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	Budget        float64   `json:"budget" db:"budget"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// AdvertiserInput is the client-supplied part of an advertiser.
// swagger:model AdvertiserInput
type AdvertiserInput struct {
	// required: true
	CompanyName string `json:"company_name" validate:"required,notblank,max=200"`
	// required: true
	ContactPerson string `json:"contact_person" validate:"required,notblank,max=200"`
	// required: true
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"max=50"`
	// minimum: 0
	Budget float64 `json:"budget" validate:"gte=0"`
	// default: active
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Normalize fills defaults.
func (in *AdvertiserInput) Normalize() {
	if in.Status == "" {
		in.Status = AdvertiserStatusActive
	}
}
