package order

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("orders"),
	}
}

func (r *MongoRepo) Create(order *Order) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("order already exists")
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.MongoID = oid
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

func (r *MongoRepo) GetByUser(userID string) []*Order {
	ctx := context.TODO()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Println("mongo Find error:", err)
		return nil
	}
	defer cursor.Close(ctx)

	var orders []*Order
	for cursor.Next(ctx) {
		var o Order
		if err := cursor.Decode(&o); err != nil {
			log.Println("decode error:", err)
			continue
		}
		orders = append(orders, &o)
	}

	return orders
}
