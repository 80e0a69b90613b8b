package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const rolesCollection = "roles"

// RoleRepository persists the set of known roles.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type mongoRole struct {
	Name      string `bson:"name"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *RoleRepository) Exists(ctx context.Context, name string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find role: %w", err)
	}
	return true, nil
}

// Create inserts the role. A duplicate-key error means a concurrent caller
// already created it, which is the outcome the caller wanted anyway.
func (r *RoleRepository) Create(ctx context.Context, name string) error {
	_, err := r.coll.InsertOne(ctx, mongoRole{
		Name:      name,
		CreatedAt: time.Now().UTC().Unix(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}
