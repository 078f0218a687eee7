package models

import "time"

// Doctor represents a practitioner account.
type Doctor struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Specialty    string    `bson:"specialty" json:"specialty"`
	Fees         float64   `bson:"fees,omitempty" json:"fees,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// RegisterDoctorRequest defines the payload for doctor registration.
type RegisterDoctorRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	Specialty string  `json:"specialty" binding:"required"`
	Fees      float64 `json:"fees"`
}
