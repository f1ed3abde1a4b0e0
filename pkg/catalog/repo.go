package catalog

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepo struct {
	categories *mongo.Collection
	products   *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		categories: db.Collection("categories"),
		products:   db.Collection("products"),
	}
}

func (r *MongoRepo) Categories() []*Category {
	ctx := context.TODO()

	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		log.Println("mongo Find error:", err)
		return nil
	}
	defer cursor.Close(ctx)

	var categories []*Category
	for cursor.Next(ctx) {
		var c Category
		if err := cursor.Decode(&c); err != nil {
			log.Println("decode error:", err)
			continue
		}
		categories = append(categories, &c)
	}

	return categories
}

func (r *MongoRepo) GetByCategory(category string) []*Product {
	return r.find(bson.M{"category": category, "active": true})
}

func (r *MongoRepo) GetBySubcategory(category, subcategory string) []*Product {
	return r.find(bson.M{"category": category, "subcategory": subcategory, "active": true})
}

func (r *MongoRepo) GetByID(id string) (*Product, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	var product Product
	err = r.products.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}

	product.ID = product.MongoID.Hex()
	return &product, nil
}

func (r *MongoRepo) Create(product *Product) error {
	ctx := context.TODO()

	result, err := r.products.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("product already exists")
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.MongoID = oid
		product.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

func (r *MongoRepo) find(filter bson.M) []*Product {
	ctx := context.TODO()

	cursor, err := r.products.Find(ctx, filter)
	if err != nil {
		log.Println("mongo Find error:", err)
		return nil
	}
	defer cursor.Close(ctx)

	var products []*Product
	for cursor.Next(ctx) {
		var p Product
		if err := cursor.Decode(&p); err != nil {
			log.Println("decode error:", err)
			continue
		}
		p.ID = p.MongoID.Hex()
		products = append(products, &p)
	}

	return products
}
