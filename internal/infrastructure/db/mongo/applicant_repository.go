package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

const collectionApplicants = "applicants"

type ApplicantRepository struct {
	col *mongo.Collection
}

func NewApplicantRepository(db *mongo.Database) *ApplicantRepository {
	return &ApplicantRepository{col: db.Collection(collectionApplicants)}
}

// Create inserts a new applicant document.
func (r *ApplicantRepository) Create(ctx context.Context, a *domain.Applicant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrApplicantExists
		}
		return err
	}
	return nil
}

// FindByID retrieves an applicant by its stable id.
func (r *ApplicantRepository) FindByID(ctx context.Context, id string) (*domain.Applicant, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail retrieves an applicant by its email (secondary natural key).
func (r *ApplicantRepository) FindByEmail(ctx context.Context, email string) (*domain.Applicant, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ApplicantRepository) findOne(ctx context.Context, filter bson.M) (*domain.Applicant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Applicant
	err := r.col.FindOne(ctx, filter).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicantNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update replaces the applicant document, guarded by the version the caller
// read. A stale version means another transition won the race.
func (r *ApplicantRepository) Update(ctx context.Context, a *domain.Applicant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": a.ID, "version": a.Version}
	next := *a
	next.Version = a.Version + 1

	res, err := r.col.ReplaceOne(ctx, filter, &next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVersionConflict
	}
	a.Version = next.Version
	return nil
}

// List returns a page of applicants matching filter and the total count.
func (r *ApplicantRepository) List(ctx context.Context, filter ports.ListApplicantsFilter) ([]*domain.Applicant, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.Department != "" {
		query["profile.department"] = filter.Department
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"profile.name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	if skip < 0 {
		skip = 0
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []*domain.Applicant
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// EnsureIndexes creates necessary indexes on the applicants collection.
func (r *ApplicantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "state", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
