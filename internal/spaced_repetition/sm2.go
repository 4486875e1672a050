package spaced_repetition

import (
	"math"
	"time"

	"github.com/example/thaivocab/pkg/models"
)

const (
	// DefaultEaseFactor is the ease every item starts with
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor the ease factor never drops below
	MinEaseFactor = 1.3

	// Mastery thresholds
	MasteryRepetitions = 5
	MasteryEaseFactor  = 2.0
)

// QualityResponse represents the quality of response in SM-2
type QualityResponse int

const (
	// Complete blackout, unable to recall
	QualityBlackout QualityResponse = 0
	// Incorrect response but remembered upon seeing the correct answer
	QualityIncorrect QualityResponse = 1
	// Incorrect response but the correct answer felt familiar
	QualityIncorrectFamiliar QualityResponse = 2
	// Correct response but required significant effort
	QualityCorrectDifficult QualityResponse = 3
	// Correct response after some hesitation
	QualityCorrectHesitation QualityResponse = 4
	// Perfect response with no hesitation
	QualityPerfect QualityResponse = 5
)

// Valid reports whether q is on the 0-5 scale
func (q QualityResponse) Valid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// SM2 implements the SuperMemo-2 algorithm for spaced repetition
type SM2 struct {
	// Lowest quality that counts as a successful recall
	PassThreshold QualityResponse
	// Ease assigned to items that have never been reviewed
	InitialEaseFactor float64
	// Floor for the ease factor
	MinEaseFactor float64
	// Upper bound for the interval in days, 0 means unbounded
	MaxInterval int
}

// NewSM2 creates a new SM2 instance with default settings
func NewSM2() *SM2 {
	return &SM2{
		PassThreshold:     QualityCorrectDifficult,
		InitialEaseFactor: DefaultEaseFactor,
		MinEaseFactor:     MinEaseFactor,
	}
}

// NewState returns the review state of an item that has never been reviewed.
// It is due immediately.
func (sm *SM2) NewState(itemID string, now time.Time) *models.ReviewState {
	return &models.ReviewState{
		ItemID:         itemID,
		EaseFactor:     sm.InitialEaseFactor,
		NextReviewDate: now,
	}
}

// Process applies one review of the given quality to the state at now
func (sm *SM2) Process(state *models.ReviewState, quality QualityResponse, now time.Time) {
	state.TotalReviews++
	passed := quality >= sm.PassThreshold
	if passed {
		state.CorrectReviews++
	}

	if !passed {
		// Failure restarts the cadence at one day
		state.Repetitions = 0
		state.Interval = 1
	} else {
		switch state.Repetitions {
		case 0:
			state.Interval = 1
		case 1:
			state.Interval = 6
		default:
			state.Interval = int(math.Round(float64(state.Interval) * state.EaseFactor))
		}
		if sm.MaxInterval > 0 && state.Interval > sm.MaxInterval {
			state.Interval = sm.MaxInterval
		}
		state.Repetitions++
	}

	state.EaseFactor = sm.NextEaseFactor(state.EaseFactor, quality)

	reviewed := now
	state.LastReviewDate = &reviewed
	state.NextReviewDate = now.AddDate(0, 0, state.Interval)
}

// NextEaseFactor computes the ease adjustment for a review of the given quality
func (sm *SM2) NextEaseFactor(ef float64, quality QualityResponse) float64 {
	q := 5.0 - float64(quality)
	ef += 0.1 - q*(0.08+q*0.02)
	if ef < sm.MinEaseFactor {
		ef = sm.MinEaseFactor
	}
	return ef
}

// IsMastered determines if an item is considered "mastered"
func IsMastered(state *models.ReviewState) bool {
	return state.Repetitions >= MasteryRepetitions && state.EaseFactor >= MasteryEaseFactor
}
