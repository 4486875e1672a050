package models

import "time"

// SchedulerState is the whole persisted review document of a learner
type SchedulerState struct {
	Words             map[string]*ReviewState   `json:"words"`
	LastSessionDate   *time.Time                `json:"lastSessionDate"`
	TotalWordsLearned int                       `json:"totalWordsLearned"`
	CurrentStreak     int                       `json:"currentStreak"`
	CustomItems       map[string]VocabularyItem `json:"customItems,omitempty"`
}

// NewSchedulerState returns the empty state used when nothing is persisted yet
func NewSchedulerState() *SchedulerState {
	return &SchedulerState{
		Words: make(map[string]*ReviewState),
	}
}
