package cart

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("carts"),
	}
}

// Get returns the user's cart, or an empty one if none was saved yet.
func (r *MongoRepo) Get(userID string) (*Cart, error) {
	ctx := context.TODO()

	var cart Cart
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &Cart{UserID: userID, Items: make([]Item, 0)}, nil
		}
		return nil, err
	}

	return &cart, nil
}

func (r *MongoRepo) Save(cart *Cart) error {
	ctx := context.TODO()

	cart.UpdatedAt = time.Now().UTC()
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"user_id": cart.UserID},
		cart,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoRepo) Clear(userID string) error {
	ctx := context.TODO()

	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
