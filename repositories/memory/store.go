package memory

import (
	"sync"

	"FaithNest/models"
)

// Store keeps every collection in process, behind one RWMutex: reads may run
// concurrently, mutations are serialized. Ids come from a single shared
// counter across all kinds, matching the transient reference store this
// package stands in for when no database is configured.
type Store struct {
	mu sync.RWMutex

	idCounter uint

	users     map[uint]*models.User
	userOrder []uint

	sessions map[string]models.Session

	prayers           map[uint][]models.PrayerEntry
	friendRequests    []models.FriendRequest
	games             []models.GameRecord
	alerts            []models.Alert
	lessonProgress    map[uint][]models.LessonProgress
	scriptureProgress map[uint][]models.ScriptureProgress
	chatLogs          []models.ChatLog
}

func NewStore() *Store {
	return &Store{
		users:             make(map[uint]*models.User),
		sessions:          make(map[string]models.Session),
		prayers:           make(map[uint][]models.PrayerEntry),
		lessonProgress:    make(map[uint][]models.LessonProgress),
		scriptureProgress: make(map[uint][]models.ScriptureProgress),
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID() uint {
	s.idCounter++
	return s.idCounter
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
