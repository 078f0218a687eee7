package models

// Availability is a per-doctor, per-date record of open booking slots.
// Exactly one document exists per (doctorId, date); writes are upserts.
type Availability struct {
	ID       string   `bson:"id" json:"id"`
	DoctorID string   `bson:"doctorId" json:"doctorId"`
	Date     string   `bson:"date" json:"date"`   // "2006-01-02"
	Slots    []string `bson:"slots" json:"slots"` // e.g., "9:30 AM", sorted by the service
}

// SetAvailabilityRequest defines the payload for setting a day's slots.
type SetAvailabilityRequest struct {
	Date  string   `json:"date" binding:"required"`
	Slots []string `json:"slots" binding:"required,min=1,dive,clocktime"`
}
