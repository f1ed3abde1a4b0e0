package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"sixwings/pkg/cart"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Order is the immutable record of a points checkout. Items are copied out
// of the cart at checkout time.
type Order struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `json:"id" bson:"order_id"`
	UserID      string             `json:"-" bson:"user_id"`
	Items       []cart.Item        `json:"itens" bson:"items"`
	TotalPoints int                `json:"totalPontos" bson:"total_points"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"criadoEm" bson:"created_at"`
}

type Repository interface {
	Create(order *Order) error
	GetByUser(userID string) []*Order
}
