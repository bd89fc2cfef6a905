package services

import (
	"errors"

	"FaithNest/models"
	"FaithNest/repositories"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo     repositories.UserRepository
	PrayerRepo   repositories.PrayerRepository
	FriendRepo   repositories.FriendRequestRepository
	GameRepo     repositories.GameRepository
	AlertRepo    repositories.AlertRepository
	ProgressRepo repositories.ProgressRepository
	ChatRepo     repositories.ChatRepository
	Sessions     *SessionService
}

func NewUserService(
	userRepo repositories.UserRepository,
	prayerRepo repositories.PrayerRepository,
	friendRepo repositories.FriendRequestRepository,
	gameRepo repositories.GameRepository,
	alertRepo repositories.AlertRepository,
	progressRepo repositories.ProgressRepository,
	chatRepo repositories.ChatRepository,
	sessions *SessionService,
) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		PrayerRepo:   prayerRepo,
		FriendRepo:   friendRepo,
		GameRepo:     gameRepo,
		AlertRepo:    alertRepo,
		ProgressRepo: progressRepo,
		ChatRepo:     chatRepo,
		Sessions:     sessions,
	}
}

func (s *UserService) Children(parentID uint) ([]models.User, error) {
	return s.UserRepo.ListChildren(parentID)
}

func (s *UserService) CreateChild(parentID uint, username, password, displayName string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrValidation
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	child := models.User{
		Username:    username,
		Password:    string(hashed),
		DisplayName: displayName,
		Role:        models.RoleChild,
		ParentID:    &parentID,
	}
	if err := s.UserRepo.Create(&child); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return child, nil
}

// DeleteChild removes one of the caller's own children. A child id outside
// the caller's roster is ErrNotFound. The child's sessions and every
// resource it owns go with it; nothing in the API can reach orphaned rows,
// so none are kept.
func (s *UserService) DeleteChild(parentID, childID uint) error {
	child, err := s.UserRepo.FindByID(childID)
	if err != nil {
		return ErrNotFound
	}
	if child.Role != models.RoleChild || child.ParentID == nil || *child.ParentID != parentID {
		return ErrNotFound
	}

	if err := s.UserRepo.Delete(childID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Sessions.InvalidateUser(childID); err != nil {
		return err
	}
	if err := s.PrayerRepo.DeleteByUser(childID); err != nil {
		return err
	}
	if err := s.ProgressRepo.DeleteByUser(childID); err != nil {
		return err
	}
	if err := s.ProgressRepo.DeleteScriptureByUser(childID); err != nil {
		return err
	}
	if err := s.FriendRepo.DeleteByChild(childID); err != nil {
		return err
	}
	if err := s.GameRepo.DeleteByChild(childID); err != nil {
		return err
	}
	if err := s.ChatRepo.DeleteByChild(childID); err != nil {
		return err
	}
	if err := s.AlertRepo.DeleteByUser(childID); err != nil {
		return err
	}
	return s.AlertRepo.DeleteByChild(childID)
}
