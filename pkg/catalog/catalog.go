package catalog

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	MongoID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID            string             `json:"id" bson:"id"`
	Name          string             `json:"nome" bson:"name"`
	Subcategories []string           `json:"subcategorias" bson:"subcategories"`
}

type Product struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `json:"id" bson:"-"`
	Title       string             `json:"titulo" bson:"title"`
	Description string             `json:"descricao,omitempty" bson:"description,omitempty"`
	Category    string             `json:"categoria" bson:"category"`
	Subcategory string             `json:"subcategoria" bson:"subcategory"`
	Points      int                `json:"pontos" bson:"points"`
	ImageURL    string             `json:"imagem,omitempty" bson:"image_url,omitempty"`
	Active      bool               `json:"ativo" bson:"active"`
}

type Repository interface {
	Categories() []*Category
	GetByCategory(category string) []*Product
	GetBySubcategory(category, subcategory string) []*Product
	GetByID(id string) (*Product, error)
	Create(product *Product) error
}
