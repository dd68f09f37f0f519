package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/repo"
)

const PasswordMinLength = 7

type UserService struct {
	users  UserStore
	carts  CartStore
	hasher PasswordHasher
	events EventPublisher
}

func NewUserService(users UserStore, carts CartStore, hasher PasswordHasher, events EventPublisher) *UserService {
	return &UserService{
		users:  users,
		carts:  carts,
		hasher: hasher,
		events: events,
	}
}

// Register validates the passwords and stores a new user with an empty cart.
// The cart is saved before the user and the two saves are not atomic, so a
// failed user insert leaves the cart behind. Username uniqueness is left to
// the store's unique index.
func (s *UserService) Register(ctx context.Context, username, password, confirmPassword string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")
	l.Info("username_set", "username", username)

	if utf8.RuneCountInString(password) < PasswordMinLength {
		l.Error("register_error", "status", 400, "reason", "password is too short", "min_length", PasswordMinLength)
		return nil, ErrPasswordTooShort
	}
	if password != confirmPassword {
		l.Error("register_error", "status", 400, "reason", "password and password confirm do not match")
		return nil, ErrPasswordMismatch
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	cart := &models.Cart{Items: []models.CartItem{}}
	if err := s.carts.CreateCart(ctx, cart); err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot save cart", "error", err)
		return nil, fmt.Errorf("create cart: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: digest,
		CartID:       cart.ID,
		Cart:         cart,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			l.Error("register_error", "status", 409, "reason", "username already taken")
			return nil, ErrUsernameTaken
		}
		l.Error("register_error", "status", 500, "reason", "cannot save user", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	l.Info("user_created", "username", username, "user_id", user.ID)
	publish(ctx, s.events, TopicUserEvents, strconv.FormatUint(uint64(user.ID), 10), map[string]any{
		"type":     "user_created",
		"userID":   user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, userLookupError(err)
	}
	return user, nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("find user: %w", err)
}
