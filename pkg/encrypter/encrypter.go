package encrypter

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a password does not match its hash.
var ErrMismatch = errors.New("password does not match")

// Encrypter hashes and checks passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

type bcryptEncrypter struct {
	cost int
}

// New returns a bcrypt encrypter. A cost of 0 uses bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return bcryptEncrypter{cost: cost}
}

func (e bcryptEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e bcryptEncrypter) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
