package services

import (
	"errors"

	"FaithNest/models"
	"FaithNest/repositories"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo repositories.UserRepository
	Sessions *SessionService
}

func NewAuthService(userRepo repositories.UserRepository, sessions *SessionService) *AuthService {
	return &AuthService{UserRepo: userRepo, Sessions: sessions}
}

type SignupInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        string
	ParentID    *uint
}

func (s *AuthService) Signup(input SignupInput) (models.User, error) {
	if input.Username == "" || input.Password == "" {
		return models.User{}, ErrValidation
	}

	role := input.Role
	if role == "" {
		role = models.RoleChild
	}
	if role != models.RoleParent && role != models.RoleChild {
		return models.User{}, ErrValidation
	}

	if input.ParentID != nil {
		parent, err := s.UserRepo.FindByID(*input.ParentID)
		if err != nil || !parent.IsParent() {
			return models.User{}, ErrValidation
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:    input.Username,
		Password:    string(hashed),
		DisplayName: input.DisplayName,
		Role:        role,
		ParentID:    input.ParentID,
	}
	if err := s.UserRepo.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Login verifies the credential pair and opens a session. A wrong password
// and an unknown username both fail with the same ErrInvalidCredentials so
// the response never reveals which one it was.
func (s *AuthService) Login(username, password string) (models.User, string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Sessions.Issue(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Logout(token string) error {
	return s.Sessions.Invalidate(token)
}

func (s *AuthService) Me(userID uint) (models.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, err
	}
	return user, nil
}
