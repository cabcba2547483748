package models

// SchedulerStats summarizes the review store: how many words sit at
// each tier, how many are due, and the mean mastery percentage.
type SchedulerStats struct {
	TotalWords     int `json:"total_words"`
	New            int `json:"new"`
	Learning       int `json:"learning"`
	Young          int `json:"young"`
	Mature         int `json:"mature"`
	Mastered       int `json:"mastered"`
	Perfect        int `json:"perfect"`
	DueCount       int `json:"due_count"`
	AverageMastery int `json:"average_mastery"`
}

// ViewedWord is a ranked entry in the most-viewed list.
type ViewedWord struct {
	Word  string `json:"word"`
	Views int    `json:"views"`
}

// MistakenWord is a ranked entry in the most-mistaken list.
type MistakenWord struct {
	Word     string  `json:"word"`
	Wrong    int     `json:"wrong"`
	Accuracy float64 `json:"accuracy"`
}

// TrackerStats aggregates the engagement store.
type TrackerStats struct {
	TotalWords      int            `json:"total_words"`
	ViewedWords     int            `json:"viewed_words"`
	QuizzedWords    int            `json:"quizzed_words"`
	WeakWords       int            `json:"weak_words"`
	TotalAttempts   int            `json:"total_quiz_attempts"`
	TotalCorrect    int            `json:"total_correct"`
	OverallAccuracy float64        `json:"overall_accuracy"`
	MostViewed      []ViewedWord   `json:"most_viewed"`
	MostMistaken    []MistakenWord `json:"most_mistakes"`
}

// LearningReport is the structured study summary handed to the
// presentation layer, which renders it however it likes.
type LearningReport struct {
	Stats          TrackerStats `json:"stats"`
	WeakWords      []WordRecord `json:"weak_words"`
	RecentMistakes []WordRecord `json:"recent_mistakes"`
	Recommendation string       `json:"recommendation"`
}
