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

const collectionEmployees = "employees"

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

// Create inserts a new employee account. The unique index on applicant_id
// turns a second insert for the same applicant into ErrDuplicateEmployee.
func (r *EmployeeRepository) Create(ctx context.Context, acct *domain.EmployeeAccount) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, acct)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmployee
		}
		return err
	}
	return nil
}

// FindByApplicantID retrieves the account provisioned for the applicant.
func (r *EmployeeRepository) FindByApplicantID(ctx context.Context, applicantID string) (*domain.EmployeeAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var acct domain.EmployeeAccount
	err := r.col.FindOne(ctx, bson.M{"applicant_id": applicantID}).Decode(&acct)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// SetActive flips the account's active flag.
func (r *EmployeeRepository) SetActive(ctx context.Context, employeeID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": employeeID},
		bson.M{"$set": bson.M{"active": active}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the employees collection.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "applicant_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
