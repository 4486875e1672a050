package models

// Stats summarises a learner's progress
type Stats struct {
	TotalWordsLearned int `json:"totalWordsLearned"`
	WordsForReview    int `json:"wordsForReview"`
	MasteredWords     int `json:"masteredWords"`
	ReviewStreak      int `json:"reviewStreak"`
}
