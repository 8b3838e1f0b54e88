package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lparra/snake-hub-be/internal/models"
	sqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Sentinel errors for account operations; handlers map these onto
// the response envelope.
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserServiceProvider defines the interface for account services.
type UserServiceProvider interface {
	Signup(username, email string) (models.User, error)
	Login(email string) (models.User, error)
	GetUserByID(id string) (models.User, error)
	UpdateSkin(id, skin string) (models.User, error)
}

// UserService provides business logic for account management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Signup creates a new account with the default skin. The duplicate-email
// check runs before the duplicate-username check so concurrent conflicts
// on both fields surface as ErrEmailTaken. Passwords are validated at the
// HTTP boundary and never reach this layer.
func (s *UserService) Signup(username, email string) (models.User, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM users WHERE email = ?", email).Scan(&n); err != nil {
		return models.User{}, err
	}
	if n > 0 {
		return models.User{}, ErrEmailTaken
	}
	if err := s.db.QueryRow("SELECT COUNT(1) FROM users WHERE username = ?", username).Scan(&n); err != nil {
		return models.User{}, err
	}
	if n > 0 {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Skin:      models.DefaultSkin,
		CreatedAt: time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, email, skin, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Username, user.Email, user.Skin, user.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return models.User{}, mapUniqueViolation(err)
	}
	return user, nil
}

// Login looks an account up by email. No stored credential exists, so the
// password is never compared against anything here.
func (s *UserService) Login(email string) (models.User, error) {
	user, err := s.scanUser(s.db.QueryRow(
		"SELECT id, username, email, skin, created_at FROM users WHERE email = ?", email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByID retrieves a single account by its ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	user, err := s.scanUser(s.db.QueryRow(
		"SELECT id, username, email, skin, created_at FROM users WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateSkin overwrites the account's cosmetic skin selector.
func (s *UserService) UpdateSkin(id, skin string) (models.User, error) {
	stmt, err := s.db.Prepare("UPDATE users SET skin = ? WHERE id = ?")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(skin, id); err != nil {
		return models.User{}, err
	}
	return s.GetUserByID(id)
}

func (s *UserService) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var createdAt string
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Skin, &createdAt); err != nil {
		return models.User{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("parse created_at: %w", err)
	}
	user.CreatedAt = ts
	return user, nil
}

// mapUniqueViolation translates a storage-level unique constraint failure
// into the matching duplicate error. This is the authoritative signal when
// the pre-insert check loses a race.
func mapUniqueViolation(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "users.email") {
			return ErrEmailTaken
		}
		if strings.Contains(msg, "users.username") {
			return ErrUsernameTaken
		}
	}
	return err
}
