package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// SignupRequest carries a registration attempt.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	EstablishmentID string `json:"establishmentId"`
}

// AuthResponse contains the account id, its role and the JWT token.
type AuthResponse struct {
	ID              string `json:"id"`
	Role            string `json:"role"`
	EstablishmentID string `json:"establishmentId,omitempty"`
	Token           string `json:"token"`
}

// UserService defines business logic for account operations.
type UserService interface {
	// RegisterUser validates the registration details, creates the account
	// and returns its id with a fresh token.
	RegisterUser(req SignupRequest) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves an account by its unique id.
	GetUserByID(userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterUser validates required fields, hashes the password, persists the
// account and issues its first token. Employee accounts must name the
// establishment they belong to.
func (s *DefaultUserService) RegisterUser(req SignupRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if req.Role != models.RoleEstablishment && req.Role != models.RoleEmployee {
		return nil, fmt.Errorf("role must be %q or %q", models.RoleEstablishment, models.RoleEmployee)
	}
	if req.Role == models.RoleEmployee && req.EstablishmentID == "" {
		return nil, fmt.Errorf("employee accounts require an establishmentId")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:              primitive.NewObjectID().Hex(),
		Email:           email,
		PasswordHash:    string(hashed),
		Role:            req.Role,
		EstablishmentID: req.EstablishmentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(&user)
}

// AuthenticateUser verifies the email/password pair and rotates the token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(user)
}

// GetUserByID retrieves an account by its unique id.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (s *DefaultUserService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, user.EstablishmentID, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(user.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	return &AuthResponse{
		ID:              user.ID,
		Role:            user.Role,
		EstablishmentID: user.EstablishmentID,
		Token:           token,
	}, nil
}
