package user

type User struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Role     string `json:"tipo"`
	Points   int    `json:"pontos"`
	Password string `json:"-" bson:"-"`
}

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	DebitPoints(userID string, amount int) error
	CreditPoints(userID string, amount int) error
}
