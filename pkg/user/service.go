package user

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"sixwings/pkg/generator"
)

const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
	RoleUser    = "user"
)

// welcomePoints is the signup bonus credited to every new account.
const welcomePoints = 1000

type ServiceInterface interface {
	Register(name, email, password string) (*User, error)
	Login(email, password string) (*User, error)
	Get(id string) (*User, error)
	Debit(userID string, amount int) error
	Credit(userID string, amount int) error
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Register(name, email, password string) (*User, error) {
	exist, err := s.Repo.FindByEmail(email)
	if exist != nil && err == nil {
		return nil, errors.New("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %s", err)
	}

	userID, err := generator.GenerateRandomID(24)
	if err != nil {
		return nil, fmt.Errorf("UserID gen error: %s", err)
	}

	user := &User{
		ID:       userID,
		Name:     name,
		Email:    email,
		Role:     RoleUser,
		Points:   welcomePoints,
		Password: string(hashedPassword),
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	return user, nil
}

func (s *Service) Get(id string) (*User, error) {
	return s.Repo.FindByID(id)
}

func (s *Service) Debit(userID string, amount int) error {
	if amount <= 0 {
		return errors.New("debit amount must be positive")
	}
	return s.Repo.DebitPoints(userID, amount)
}

func (s *Service) Credit(userID string, amount int) error {
	if amount <= 0 {
		return errors.New("credit amount must be positive")
	}
	return s.Repo.CreditPoints(userID, amount)
}
