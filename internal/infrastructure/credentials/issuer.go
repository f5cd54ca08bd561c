// Package credentials implements the credential-service collaborator: it
// issues login material for freshly provisioned employee accounts and
// deactivates it again on rejection.
package credentials

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

const (
	collectionCredentials = "employee_credentials"
	defaultTimeout        = 10 * time.Second
)

// Issuer stores bcrypt-hashed temp passwords in MongoDB. The plaintext temp
// password leaves this package exactly once, inside the issuance result.
type Issuer struct {
	col *mongo.Collection
}

func NewIssuer(db *mongo.Database) *Issuer {
	return &Issuer{col: db.Collection(collectionCredentials)}
}

type credentialDoc struct {
	EmployeeID   string `bson:"_id"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
	Active       bool   `bson:"active"`
	IssuedAt     int64  `bson:"issued_at"`
}

// Issue generates a temp password for the account and persists its hash.
func (i *Issuer) Issue(ctx context.Context, acct *domain.EmployeeAccount) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tempPassword, err := generatePassword()
	if err != nil {
		return nil, fmt.Errorf("generate temp password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	doc := credentialDoc{
		EmployeeID:   acct.ID,
		Username:     acct.Email,
		PasswordHash: string(hash),
		Active:       true,
		IssuedAt:     time.Now().UTC().Unix(),
	}
	if _, err := i.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}

	return &domain.Credential{
		EmployeeID:   acct.ID,
		Username:     doc.Username,
		TempPassword: tempPassword,
	}, nil
}

// Deactivate disables the credential for the employee. Deactivating an
// unknown employee is not an error: the early rejection path never issued
// anything.
func (i *Issuer) Deactivate(ctx context.Context, employeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := i.col.UpdateOne(ctx,
		bson.M{"_id": employeeID},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the credentials collection.
func (i *Issuer) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := i.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// generatePassword returns 18 bytes of randomness, URL-safe base64 encoded.
func generatePassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
