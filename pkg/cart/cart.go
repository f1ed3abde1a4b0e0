package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Item struct {
	ProductID string `json:"produtoId" bson:"product_id"`
	Title     string `json:"titulo" bson:"title"`
	Points    int    `json:"pontos" bson:"points"`
	Quantity  int    `json:"quantidade" bson:"quantity"`
}

// Cart is the single shopping cart of a user. Totals are derived, never
// stored, so the cart cannot disagree with its own items.
type Cart struct {
	MongoID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `json:"-" bson:"user_id"`
	Items     []Item             `json:"itens" bson:"items"`
	UpdatedAt time.Time          `json:"atualizadoEm" bson:"updated_at"`
}

// TotalPoints sums the cart's point cost.
func (c *Cart) TotalPoints() int {
	total := 0
	for _, item := range c.Items {
		total += item.Points * item.Quantity
	}
	return total
}

type Repository interface {
	Get(userID string) (*Cart, error)
	Save(cart *Cart) error
	Clear(userID string) error
}
