package entities

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Id        uint
	CreatedAt time.Time
	Username  string
	Password  string
}

func NewUser(username, password string) *User {
	return &User{
		CreatedAt: time.Now().UTC(),
		Username:  username,
		Password:  password,
	}
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) String() string {
	return fmt.Sprintf("User('%s')", u.Username)
}
