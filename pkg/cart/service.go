package cart

import (
	"errors"

	"sixwings/pkg/catalog"
)

type ServiceInterface interface {
	Get(userID string) (*Cart, error)
	AddProduct(userID, productID string, quantity int) (*Cart, error)
	SetQuantity(userID, productID string, quantity int) (*Cart, error)
	RemoveProduct(userID, productID string) (*Cart, error)
	Clear(userID string) error
}

type Service struct {
	Repo    Repository
	Catalog catalog.ServiceInterface
}

func NewService(repo Repository, cat catalog.ServiceInterface) *Service {
	return &Service{Repo: repo, Catalog: cat}
}

func (s *Service) Get(userID string) (*Cart, error) {
	return s.Repo.Get(userID)
}

// AddProduct puts a catalog product into the cart, merging quantities when
// it is already there. Title and points are snapshotted from the catalog at
// add time.
func (s *Service) AddProduct(userID, productID string, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	product, err := s.Catalog.ProductByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, errors.New("product is not available")
	}

	cart, err := s.Repo.Get(userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, Item{
			ProductID: product.ID,
			Title:     product.Title,
			Points:    product.Points,
			Quantity:  quantity,
		})
	}

	if err := s.Repo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity overwrites an item's quantity; zero removes the item.
func (s *Service) SetQuantity(userID, productID string, quantity int) (*Cart, error) {
	if quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}
	if quantity == 0 {
		return s.RemoveProduct(userID, productID)
	}

	cart, err := s.Repo.Get(userID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			if err := s.Repo.Save(cart); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}

	return nil, errors.New("product not in cart")
}

func (s *Service) RemoveProduct(userID, productID string) (*Cart, error) {
	cart, err := s.Repo.Get(userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	found := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return nil, errors.New("product not in cart")
	}

	cart.Items = items
	if err := s.Repo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) Clear(userID string) error {
	return s.Repo.Clear(userID)
}
