// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meetcure/models"
)

// Upsert stores the availability document for its (doctorId, date) key,
// replacing any existing one. Identical writes are idempotent: the key
// keeps exactly one document.
func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, av *models.Availability) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if av.ID == "" {
		av.ID = uuid.New().String()
	}

	filter := bson.M{"doctorId": av.DoctorID, "date": av.Date}
	update := bson.M{
		"$set": bson.M{"slots": av.Slots},
		"$setOnInsert": bson.M{
			"id":       av.ID,
			"doctorId": av.DoctorID,
			"date":     av.Date,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Availability
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert availability for doctor %s on %s: %w", av.DoctorID, av.Date, err)
	}
	return &stored, nil
}

// GetByDoctor returns every availability document for the doctor, or an
// empty slice when none exist.
func (r *mongoAvailabilityRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	docs := []models.Availability{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode availability: %w", err)
	}
	return docs, nil
}

func (r *mongoAvailabilityRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Availability
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID, "date": date}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoAvailabilityRepo) DeleteByDoctorAndDate(ctx context.Context, doctorID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"doctorId": doctorID, "date": date})
	if err != nil {
		return fmt.Errorf("failed to delete availability for doctor %s on %s: %w", doctorID, date, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RemoveSlot pulls a single slot from the document; booking a slot
// consumes it. Missing document or slot reports mongo.ErrNoDocuments.
func (r *mongoAvailabilityRepo) RemoveSlot(ctx context.Context, doctorID, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "date": date, "slots": slot}
	update := bson.M{"$pull": bson.M{"slots": slot}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove slot %q: %w", slot, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddSlot restores a slot, used when an appointment is cancelled.
// $addToSet keeps a double cancel from duplicating the slot.
func (r *mongoAvailabilityRepo) AddSlot(ctx context.Context, doctorID, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "date": date}
	update := bson.M{
		"$addToSet": bson.M{"slots": slot},
		"$setOnInsert": bson.M{
			"id":       uuid.New().String(),
			"doctorId": doctorID,
			"date":     date,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to restore slot %q: %w", slot, err)
	}
	return nil
}
