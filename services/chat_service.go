package services

import (
	"FaithNest/models"
	"FaithNest/repositories"
)

type ChatService struct {
	Repo     repositories.ChatRepository
	UserRepo repositories.UserRepository
}

func NewChatService(repo repositories.ChatRepository, userRepo repositories.UserRepository) *ChatService {
	return &ChatService{Repo: repo, UserRepo: userRepo}
}

// Logs returns chat activity for the caller's household children.
func (s *ChatService) Logs(callerID uint) ([]models.ChatLog, error) {
	childIDs, err := householdChildIDs(s.UserRepo, callerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByChildren(childIDs)
}
