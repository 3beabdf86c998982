package service

import (
	"context"
	"errors"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
)

type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username, hashedPassword string, role models.Role) (int64, error)
}

// Identity is what a session remembers about a signed-in user.
type Identity struct {
	Username string
	Role     models.Role
}

type Credentials struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required"`
}

// maxPasswordBytes is bcrypt's input limit, counted in bytes rather than runes.
const maxPasswordBytes = 72

type Auth struct {
	store    UserStore
	cost     int
	validate *validatorv10.Validate
}

// NewAuth returns an Auth hashing with the given bcrypt cost; zero means bcrypt.DefaultCost.
func NewAuth(store UserStore, cost int) *Auth {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Auth{store: store, cost: cost, validate: newValidator()}
}

// Register creates a customer account. Self-registration never grants admin.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	_, err := a.CreateUser(ctx, username, password, models.RoleCustomer)
	return err
}

// CreateUser stores a new account with the given role.
func (a *Auth) CreateUser(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	creds := Credentials{Username: strings.TrimSpace(username), Password: password}
	if err := validate(a.validate, creds); err != nil {
		return nil, err
	}
	if len(creds.Password) > maxPasswordBytes {
		return nil, &ValidationError{Fields: map[string]string{"password": "Password is too long."}}
	}
	if !role.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"role": "Invalid role."}}
	}

	_, err := a.store.GetUserByUsername(ctx, creds.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.cost)
	if err != nil {
		return nil, err
	}

	id, err := a.store.CreateUser(ctx, creds.Username, string(hashed), role)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: creds.Username, Password: string(hashed), Role: role}, nil
}

// Authenticate succeeds only when username, password and claimed role all match.
func (a *Auth) Authenticate(ctx context.Context, username, password, role string) (*Identity, error) {
	user, err := a.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if string(user.Role) != role {
		return nil, ErrInvalidCredentials
	}
	return &Identity{Username: user.Username, Role: user.Role}, nil
}
