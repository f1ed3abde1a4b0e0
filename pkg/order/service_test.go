package order_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"sixwings/pkg/cart"
	"sixwings/pkg/order"
	"sixwings/pkg/user"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(o *order.Order) error {
	return m.Called(o).Error(0)
}

func (m *mockRepo) GetByUser(userID string) []*order.Order {
	args := m.Called(userID)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order)
	}
	return nil
}

type mockCart struct {
	mock.Mock
}

func (m *mockCart) Get(userID string) (*cart.Cart, error) {
	args := m.Called(userID)
	if c := args.Get(0); c != nil {
		return c.(*cart.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCart) AddProduct(userID, productID string, quantity int) (*cart.Cart, error) {
	args := m.Called(userID, productID, quantity)
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *mockCart) SetQuantity(userID, productID string, quantity int) (*cart.Cart, error) {
	args := m.Called(userID, productID, quantity)
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *mockCart) RemoveProduct(userID, productID string) (*cart.Cart, error) {
	args := m.Called(userID, productID)
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *mockCart) Clear(userID string) error {
	return m.Called(userID).Error(0)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Register(name, email, password string) (*user.User, error) {
	args := m.Called(name, email, password)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUsers) Login(email, password string) (*user.User, error) {
	args := m.Called(email, password)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUsers) Get(id string) (*user.User, error) {
	args := m.Called(id)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUsers) Debit(userID string, amount int) error {
	return m.Called(userID, amount).Error(0)
}

func (m *mockUsers) Credit(userID string, amount int) error {
	return m.Called(userID, amount).Error(0)
}

func filledCart() *cart.Cart {
	return &cart.Cart{
		UserID: "u1",
		Items: []cart.Item{
			{ProductID: "p1", Title: "Voo GRU-LIS", Points: 50000, Quantity: 1},
			{ProductID: "p2", Title: "Diária Hotel", Points: 12000, Quantity: 2},
		},
	}
}

func TestCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		carts := new(mockCart)
		users := new(mockUsers)
		svc := order.NewService(repo, carts, users)

		carts.On("Get", "u1").Return(filledCart(), nil)
		users.On("Debit", "u1", 74000).Return(nil)
		repo.On("Create", mock.AnythingOfType("*order.Order")).Return(nil)
		carts.On("Clear", "u1").Return(nil)

		o, err := svc.Checkout("u1")

		assert.NoError(t, err)
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, 74000, o.TotalPoints)
		assert.Equal(t, order.StatusConfirmed, o.Status)
		assert.Len(t, o.Items, 2)
		carts.AssertCalled(t, "Clear", "u1")
	})

	t.Run("empty cart", func(t *testing.T) {
		repo := new(mockRepo)
		carts := new(mockCart)
		users := new(mockUsers)
		svc := order.NewService(repo, carts, users)

		carts.On("Get", "u1").Return(&cart.Cart{UserID: "u1"}, nil)

		_, err := svc.Checkout("u1")
		assert.ErrorIs(t, err, order.ErrEmptyCart)
		users.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything)
	})

	t.Run("insufficient points", func(t *testing.T) {
		repo := new(mockRepo)
		carts := new(mockCart)
		users := new(mockUsers)
		svc := order.NewService(repo, carts, users)

		carts.On("Get", "u1").Return(filledCart(), nil)
		users.On("Debit", "u1", 74000).Return(user.ErrInsufficientPoints)

		_, err := svc.Checkout("u1")
		assert.ErrorIs(t, err, user.ErrInsufficientPoints)
		repo.AssertNotCalled(t, "Create", mock.Anything)
		carts.AssertNotCalled(t, "Clear", mock.Anything)
	})

	t.Run("order write failure refunds the debit", func(t *testing.T) {
		repo := new(mockRepo)
		carts := new(mockCart)
		users := new(mockUsers)
		svc := order.NewService(repo, carts, users)

		carts.On("Get", "u1").Return(filledCart(), nil)
		users.On("Debit", "u1", 74000).Return(nil)
		repo.On("Create", mock.AnythingOfType("*order.Order")).Return(errors.New("mongo down"))
		users.On("Credit", "u1", 74000).Return(nil)

		_, err := svc.Checkout("u1")
		assert.Error(t, err)
		users.AssertCalled(t, "Credit", "u1", 74000)
		carts.AssertNotCalled(t, "Clear", mock.Anything)
	})
}

func TestGetByUser(t *testing.T) {
	repo := new(mockRepo)
	svc := order.NewService(repo, new(mockCart), new(mockUsers))

	repo.On("GetByUser", "u1").Return([]*order.Order{{ID: "o1"}, {ID: "o2"}})

	orders := svc.GetByUser("u1")
	assert.Len(t, orders, 2)
}
