package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"invoice_manager/internal/models"
	"invoice_manager/internal/redis"
	"invoice_manager/internal/repository"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

type UserService interface {
	CreateUser(user *models.User, password string) error
	Authenticate(identifier, password string) (*models.User, string, error)
	GetSessionUser(token string) (*models.User, error)
	Logout(token string) error
	EnsureDefaultAdmin(email, password string) error
}

type userService struct {
	userRepo       repository.UserRepository
	cache          *redis.Client
	sessionTimeout int
}

func NewUserService(userRepo repository.UserRepository, cache *redis.Client, sessionTimeout int) UserService {
	return &userService{userRepo: userRepo, cache: cache, sessionTimeout: sessionTimeout}
}

func (s *userService) CreateUser(user *models.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)
	if user.Role == "" {
		user.Role = string(models.Staff)
	}
	return s.userRepo.Create(user)
}

// Authenticate verifies the credentials and opens a redis-backed session,
// returning the opaque token the client sends back on later requests.
func (s *userService) Authenticate(identifier, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, "", err
	}

	if s.cache != nil {
		session := &redis.SessionData{
			UserID:    user.ID,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: time.Now(),
		}
		if err := s.cache.SetSession(token, session, time.Duration(s.sessionTimeout)*time.Second); err != nil {
			log.Printf("Warning: failed to store session: %v", err)
		}
	}

	return user, token, nil
}

// GetSessionUser resolves a session token back to its active user. Every
// protected request goes through here via the auth middleware.
func (s *userService) GetSessionUser(token string) (*models.User, error) {
	if token == "" || s.cache == nil {
		return nil, ErrInvalidSession
	}

	session, err := s.cache.GetSession(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidSession
	}
	return user, nil
}

// Logout drops the session. A token that was never stored is not an error.
func (s *userService) Logout(token string) error {
	if token == "" || s.cache == nil {
		return nil
	}
	return s.cache.DeleteSession(token)
}

// EnsureDefaultAdmin seeds the first account so the login screen works on a
// fresh database.
func (s *userService) EnsureDefaultAdmin(email, password string) error {
	count, err := s.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.User{
		Username: "admin",
		Email:    email,
		Role:     string(models.Admin),
		IsActive: true,
	}
	log.Printf("Seeding default admin user %s", email)
	return s.CreateUser(admin, password)
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
