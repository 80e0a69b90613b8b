package mongo

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/streamvault/identity-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository is the Mongo-backed credential store. It owns password
// hashing and policy validation; the core only ever passes the raw password
// through.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Roles        []string           `bson:"roles,omitempty"`
	Active       bool               `bson:"active"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Roles:        mu.Roles,
		Active:       mu.Active,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if reasons := validatePassword(password); len(reasons) > 0 {
		return nil, &domain.CreationError{Reasons: reasons}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	doc := mongoUser{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: string(hash),
		Roles:        user.Roles,
		Active:       user.Active,
		CreatedAt:    now.Unix(),
		UpdatedAt:    now.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	return r.FindByUsername(ctx, user.Username)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// VerifyPassword checks the credentials independently of any account status.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials so
// the caller cannot tell them apart.
func (r *UserRepository) VerifyPassword(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := r.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (r *UserRepository) AddToRole(ctx context.Context, username, role string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{
			"$addToSet": bson.M{"roles": role},
			"$set":      bson.M{"updated_at": time.Now().UTC().Unix()},
		},
	)
	if err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// validatePassword is the store's creation-time password policy. Reasons are
// phrased for end users; they travel back through CreationError.
func validatePassword(password string) []string {
	var reasons []string
	if len(password) < 8 {
		reasons = append(reasons, "password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		reasons = append(reasons, "password must be at most 72 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		reasons = append(reasons, "password must contain at least one letter and one digit")
	}
	return reasons
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
