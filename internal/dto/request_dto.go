package dto

// CreateTestRequest starts a new practice test. Both filters are optional and
// combine as an AND over the catalog; num_questions falls back to the
// configured default when omitted.
type CreateTestRequest struct {
	CategoryID   *uint  `json:"category_id"`
	TopicID      *uint  `json:"topic_id"`
	NumQuestions int    `json:"num_questions" binding:"omitempty,gt=0"`
	Title        string `json:"title"`
}

// UpdateTestRequest updates elapsed time mid-test and/or marks the test
// completed. Completion triggers scoring, progress and session updates.
type UpdateTestRequest struct {
	Completed        *bool `json:"completed"`
	TimeSpentSeconds *int  `json:"time_spent_seconds" binding:"omitempty,gte=0"`
}

type SubmitAnswerRequest struct {
	QuestionID       uint   `json:"question_id" binding:"required"`
	Answer           string `json:"answer" binding:"required,oneof=A B C D"`
	TimeSpentSeconds int    `json:"time_spent_seconds" binding:"omitempty,gte=0"`
}

// UpdateProgressRequest carries incremental (not cumulative) counts for one topic.
type UpdateProgressRequest struct {
	TopicID            uint `json:"topic_id" binding:"required"`
	QuestionsAttempted int  `json:"questions_attempted" binding:"gte=0"`
	QuestionsCorrect   int  `json:"questions_correct" binding:"gte=0"`
}

type TogglePlanRequest struct {
	PlanID    uint  `json:"plan_id" binding:"required"`
	Completed *bool `json:"completed" binding:"required"`
}

type LogSessionRequest struct {
	MinutesStudied     int    `json:"minutes_studied" binding:"gte=0"`
	QuestionsPracticed int    `json:"questions_practiced" binding:"gte=0"`
	TopicsCovered      []uint `json:"topics_covered"`
}

type UpsertProfileRequest struct {
	DisplayName        *string `json:"display_name"`
	TargetScore        *int    `json:"target_score"`
	TestDate           *string `json:"test_date"`
	CurrentScore       *int    `json:"current_score"`
	StudyMinutesPerDay *int    `json:"study_minutes_per_day" binding:"omitempty,gt=0"`
}
