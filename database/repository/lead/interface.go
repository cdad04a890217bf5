package leadRepo

import (
	"context"
	"errors"

	"scopex/config"
	"scopex/database"
	"scopex/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRemoteDisabled is returned by every operation when no remote store is
// configured. Callers log it and fall back to the local cache.
var ErrRemoteDisabled = errors.New("remote lead store is not configured")

// RemoteLeadRepository is the optional cloud-side half of the lead registry.
// All operations are best-effort from the registry's point of view.
type RemoteLeadRepository interface {
	Create(ctx context.Context, category models.LeadCategory, record models.LeadRecord) (string, error)
	ListAll(ctx context.Context, category models.LeadCategory) ([]models.LeadRecord, error)
	Update(ctx context.Context, category models.LeadCategory, id string, patch models.LeadPatch) error
	Delete(ctx context.Context, category models.LeadCategory, id string) error
}

type mongoLeadRepo struct {
	hospital *mongo.Collection
	camp     *mongo.Collection
}

// NewRemoteLeadRepo returns a Mongo-backed repository, or a disabled stub
// when no MongoDB connection is available.
func NewRemoteLeadRepo() RemoteLeadRepository {
	if !database.RemoteEnabled() {
		return disabledLeadRepo{}
	}
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &mongoLeadRepo{
		hospital: db.Collection("hospital_leads"),
		camp:     db.Collection("camp_bookings"),
	}
}

func (r *mongoLeadRepo) coll(category models.LeadCategory) *mongo.Collection {
	if category == models.CategoryCamp {
		return r.camp
	}
	return r.hospital
}

type disabledLeadRepo struct{}

func (disabledLeadRepo) Create(context.Context, models.LeadCategory, models.LeadRecord) (string, error) {
	return "", ErrRemoteDisabled
}

func (disabledLeadRepo) ListAll(context.Context, models.LeadCategory) ([]models.LeadRecord, error) {
	return nil, ErrRemoteDisabled
}

func (disabledLeadRepo) Update(context.Context, models.LeadCategory, string, models.LeadPatch) error {
	return ErrRemoteDisabled
}

func (disabledLeadRepo) Delete(context.Context, models.LeadCategory, string) error {
	return ErrRemoteDisabled
}
