package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

const collectionOnboarding = "onboarding_records"

type OnboardingRepository struct {
	col *mongo.Collection
}

func NewOnboardingRepository(db *mongo.Database) *OnboardingRepository {
	return &OnboardingRepository{col: db.Collection(collectionOnboarding)}
}

// Create inserts a new checklist record.
func (r *OnboardingRepository) Create(ctx context.Context, rec *domain.OnboardingRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// FindByApplicantID retrieves the record keyed to the applicant.
func (r *OnboardingRepository) FindByApplicantID(ctx context.Context, applicantID string) (*domain.OnboardingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.OnboardingRecord
	err := r.col.FindOne(ctx, bson.M{"applicant_id": applicantID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Update replaces the record, guarded by the version the caller read.
func (r *OnboardingRepository) Update(ctx context.Context, rec *domain.OnboardingRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"applicant_id": rec.ApplicantID, "version": rec.Version}
	next := *rec
	next.Version = rec.Version + 1

	res, err := r.col.ReplaceOne(ctx, filter, &next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVersionConflict
	}
	rec.Version = next.Version
	return nil
}

// EnsureIndexes creates necessary indexes on the onboarding collection.
func (r *OnboardingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "applicant_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
