package models

import "time"

// ReviewState tracks the SM-2 scheduling of a single vocabulary item
type ReviewState struct {
	ItemID         string     `json:"wordId"`
	EaseFactor     float64    `json:"easeFactor"`
	Interval       int        `json:"interval"`    // days until the next review
	Repetitions    int        `json:"repetitions"` // consecutive passing reviews
	NextReviewDate time.Time  `json:"nextReviewDate"`
	LastReviewDate *time.Time `json:"lastReviewDate"`
	TotalReviews   int        `json:"totalReviews"`
	CorrectReviews int        `json:"correctReviews"`
}

// IsDue reports whether the item should be reviewed at now
func (s *ReviewState) IsDue(now time.Time) bool {
	return !now.Before(s.NextReviewDate)
}
