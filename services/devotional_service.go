package services

import (
	"time"

	"FaithNest/models"
)

type DevotionalService struct{}

func NewDevotionalService() *DevotionalService {
	return &DevotionalService{}
}

func (s *DevotionalService) List() []models.Devotional {
	return devotionalCatalog
}

// Today picks the most recent devotional dated on or before today. When all
// entries are future-dated the oldest one is served rather than nothing.
func (s *DevotionalService) Today() models.Devotional {
	today := time.Now().Format("2006-01-02")

	var best models.Devotional
	bestSet := false
	for _, d := range devotionalCatalog {
		if d.Date > today {
			continue
		}
		if !bestSet || d.Date > best.Date {
			best = d
			bestSet = true
		}
	}
	if bestSet {
		return best
	}

	oldest := devotionalCatalog[0]
	for _, d := range devotionalCatalog[1:] {
		if d.Date < oldest.Date {
			oldest = d
		}
	}
	return oldest
}
