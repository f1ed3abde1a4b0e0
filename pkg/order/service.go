package order

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"sixwings/pkg/cart"
	"sixwings/pkg/user"
)

var ErrEmptyCart = errors.New("cart is empty")

type ServiceInterface interface {
	Checkout(userID string) (*Order, error)
	GetByUser(userID string) []*Order
}

type Service struct {
	Repo  Repository
	Cart  cart.ServiceInterface
	Users user.ServiceInterface
}

func NewService(repo Repository, carts cart.ServiceInterface, users user.ServiceInterface) *Service {
	return &Service{Repo: repo, Cart: carts, Users: users}
}

// Checkout turns the user's cart into a confirmed order. The points debit
// happens before the order is written; a conditional update guards the
// balance, so a failed debit aborts the checkout with the cart intact.
func (s *Service) Checkout(userID string) (*Order, error) {
	c, err := s.Cart.Get(userID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	total := c.TotalPoints()
	if err := s.Users.Debit(userID, total); err != nil {
		return nil, err
	}

	order := &Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       c.Items,
		TotalPoints: total,
		Status:      StatusConfirmed,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(order); err != nil {
		// The debit already happened; hand the points back.
		_ = s.Users.Credit(userID, total)
		return nil, err
	}

	if err := s.Cart.Clear(userID); err != nil {
		return order, nil // order stands; a stale cart is recoverable
	}

	return order, nil
}

func (s *Service) GetByUser(userID string) []*Order {
	return s.Repo.GetByUser(userID)
}
