package services

import (
	"FaithNest/models"
	"FaithNest/repositories"
)

// Daily game-time allowance in minutes.
const gameTimeTotal = 60

const recentLessonCount = 3

type DashboardService struct {
	UserRepo     repositories.UserRepository
	GameRepo     repositories.GameRepository
	ProgressRepo repositories.ProgressRepository
	Devotionals  *DevotionalService
	Lessons      *LessonService
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository,
	progressRepo repositories.ProgressRepository,
	devotionals *DevotionalService,
	lessons *LessonService,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		GameRepo:     gameRepo,
		ProgressRepo: progressRepo,
		Devotionals:  devotionals,
		Lessons:      lessons,
	}
}

// ChildDashboard assembles the aggregate child view. It is all-or-nothing:
// if any sub-fetch fails the whole call fails rather than returning a
// partially populated payload.
func (s *DashboardService) ChildDashboard(userID uint) (models.Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return models.Dashboard{}, ErrUnauthorized
	}
	if user.Role != models.RoleChild {
		return models.Dashboard{}, ErrForbidden
	}

	records, err := s.GameRepo.ListByChildren([]uint{userID})
	if err != nil {
		return models.Dashboard{}, err
	}
	played := 0
	for _, r := range records {
		played += r.ScreenTime
	}
	earned := played
	if earned > gameTimeTotal {
		earned = gameTimeTotal
	}

	scripture, err := s.ProgressRepo.ListScriptureByUser(userID)
	if err != nil {
		return models.Dashboard{}, err
	}

	lessons := s.Lessons.Lessons()
	if len(lessons) > recentLessonCount {
		lessons = lessons[:recentLessonCount]
	}

	return models.Dashboard{
		User: models.DashboardUser{
			ID:          user.ID,
			DisplayName: user.DisplayName,
		},
		DailyDevotional: s.Devotionals.Today(),
		GameTime: models.GameTime{
			Earned:    earned,
			Available: gameTimeTotal - earned,
			Total:     gameTimeTotal,
		},
		ScriptureProgress: scripture,
		RecentLessons:     lessons,
	}, nil
}
