package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/model"
	"github.com/AaronM524/SAT-Prep/internal/repository"
)

type completionFixture struct {
	db        *gorm.DB
	generator TestGeneratorService
	answers   AnswerService
	svc       TestCompletionService
}

func newCompletionFixture(t *testing.T) *completionFixture {
	t.Helper()
	db := newTestDB(t)
	seedCatalog(t, db, 10)
	testRepo := repository.NewPracticeTestRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	return &completionFixture{
		db:        db,
		generator: NewTestGeneratorService(questionRepo, testRepo, testConfig(), db),
		answers:   NewAnswerService(testRepo, questionRepo),
		svc:       NewTestCompletionService(testRepo, db),
	}
}

// answerAll submits every question of the test; correct answers for the first
// correctCount rows in order, a wrong answer for the rest.
func (f *completionFixture) answerAll(t *testing.T, userID string, testID uint, correctCount int) {
	t.Helper()
	var rows []model.TestQuestion
	require.NoError(t, f.db.Where("test_id = ?", testID).Order("order_index ASC").Find(&rows).Error)
	for i, row := range rows {
		var q model.Question
		require.NoError(t, f.db.First(&q, row.QuestionID).Error)
		answer := q.CorrectAnswer
		if i >= correctCount {
			answer = "D" // seeded keys are A or B
		}
		_, err := f.answers.SubmitAnswer(userID, testID, dto.SubmitAnswerRequest{QuestionID: q.ID, Answer: answer})
		require.NoError(t, err)
	}
}

func TestUpdateTest_CompletionScoresAndPropagates(t *testing.T) {
	f := newCompletionFixture(t)
	test, err := f.generator.CreateTest("user-1", dto.CreateTestRequest{NumQuestions: 10})
	require.NoError(t, err)
	f.answerAll(t, "user-1", test.ID, 7)

	completed := true
	seconds := 610 // 10m10s rounds up to 11 minutes
	updated, err := f.svc.UpdateTest("user-1", test.ID, dto.UpdateTestRequest{
		Completed:        &completed,
		TimeSpentSeconds: &seconds,
	})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Equal(t, 7, updated.CorrectAnswers)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 70, *updated.Score)
	require.NotNil(t, updated.CompletedAt)

	// Every answered topic gained progress.
	var progress []model.UserProgress
	require.NoError(t, f.db.Where("user_id = ?", "user-1").Find(&progress).Error)
	require.NotEmpty(t, progress)
	attempted, correct := 0, 0
	for _, p := range progress {
		attempted += p.QuestionsAttempted
		correct += p.QuestionsCorrect
	}
	assert.Equal(t, 10, attempted, "all questions count as attempted")
	assert.Equal(t, 7, correct)

	// The day's session reflects the test.
	var session model.StudySession
	today := time.Now().Format(dateLayout)
	require.NoError(t, f.db.Where("user_id = ? AND date = ?", "user-1", today).First(&session).Error)
	assert.Equal(t, 11, session.MinutesStudied)
	assert.Equal(t, 10, session.QuestionsPracticed)
	assert.NotEmpty(t, session.TopicsCovered)
}

func TestUpdateTest_PerfectScore(t *testing.T) {
	f := newCompletionFixture(t)
	test, err := f.generator.CreateTest("user-1", dto.CreateTestRequest{NumQuestions: 6})
	require.NoError(t, err)
	f.answerAll(t, "user-1", test.ID, 6)

	completed := true
	updated, err := f.svc.UpdateTest("user-1", test.ID, dto.UpdateTestRequest{Completed: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 100, *updated.Score)
}

func TestUpdateTest_UnansweredCountAsWrong(t *testing.T) {
	f := newCompletionFixture(t)
	test, err := f.generator.CreateTest("user-1", dto.CreateTestRequest{NumQuestions: 4})
	require.NoError(t, err)
	// No answers submitted at all.

	completed := true
	updated, err := f.svc.UpdateTest("user-1", test.ID, dto.UpdateTestRequest{Completed: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 0, *updated.Score)
	assert.Equal(t, 0, updated.CorrectAnswers)
}

func TestUpdateTest_TimeOnlyUpdate(t *testing.T) {
	f := newCompletionFixture(t)
	test, err := f.generator.CreateTest("user-1", dto.CreateTestRequest{NumQuestions: 4})
	require.NoError(t, err)

	seconds := 120
	updated, err := f.svc.UpdateTest("user-1", test.ID, dto.UpdateTestRequest{TimeSpentSeconds: &seconds})
	require.NoError(t, err)

	assert.Equal(t, 120, updated.TimeSpentSeconds)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.Score, "a time update must not score the test")

	var count int64
	require.NoError(t, f.db.Model(&model.UserProgress{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.Zero(t, count, "a time update must not touch progress")
}

func TestUpdateTest_RecompletionDoesNotDoubleCount(t *testing.T) {
	f := newCompletionFixture(t)
	test, err := f.generator.CreateTest("user-1", dto.CreateTestRequest{NumQuestions: 5})
	require.NoError(t, err)
	f.answerAll(t, "user-1", test.ID, 5)

	completed := true
	_, err = f.svc.UpdateTest("user-1", test.ID, dto.UpdateTestRequest{Completed: &completed})
	require.NoError(t, err)

	var before []model.UserProgress
	require.NoError(t, f.db.Where("user_id = ?", "user-1").Order("topic_id ASC").Find(&before).Error)

	_, err = f.svc.UpdateTest("user-1", test.ID, dto.UpdateTestRequest{Completed: &completed})
	require.NoError(t, err)

	var after []model.UserProgress
	require.NoError(t, f.db.Where("user_id = ?", "user-1").Order("topic_id ASC").Find(&after).Error)
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].QuestionsAttempted, after[i].QuestionsAttempted,
			"marking an already completed test completed again must not re-apply deltas")
	}
}
