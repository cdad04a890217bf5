package leadRepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"scopex/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new lead and returns its remote id. Locally-originated
// ids are replaced with a remote-confirmed one on insert.
func (r *mongoLeadRepo) Create(ctx context.Context, category models.LeadCategory, record models.LeadRecord) (string, error) {
	if record.ID == "" || models.IsLocalID(record.ID) {
		record.ID = uuid.New().String()
	}
	record.Category = category
	record.CreatedAt = time.Now()

	if _, err := r.coll(category).InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// ListAll returns every lead in the category's collection.
func (r *mongoLeadRepo) ListAll(ctx context.Context, category models.LeadCategory) ([]models.LeadRecord, error) {
	cursor, err := r.coll(category).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.LeadRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Update applies a partial status/notes patch to a lead by id.
func (r *mongoLeadRepo) Update(ctx context.Context, category models.LeadCategory, id string, patch models.LeadPatch) error {
	set := bson.M{}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.AdminNotes != nil {
		set["adminNotes"] = *patch.AdminNotes
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll(category).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("lead not found: " + strings.TrimSpace(id))
	}
	return nil
}

// Delete removes a lead by id.
func (r *mongoLeadRepo) Delete(ctx context.Context, category models.LeadCategory, id string) error {
	res, err := r.coll(category).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("lead not found: " + strings.TrimSpace(id))
	}
	return nil
}
