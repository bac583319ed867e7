package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AaronM524/SAT-Prep/config"
	"github.com/AaronM524/SAT-Prep/internal/model"
)

// newTestDB opens a uniquely named shared in-memory database so every test
// gets isolated state while gorm's connection pool sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Category{},
		&model.Topic{},
		&model.Question{},
		&model.Profile{},
		&model.PracticeTest{},
		&model.TestQuestion{},
		&model.UserProgress{},
		&model.StudyPlan{},
		&model.StudySession{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Study: config.Study{
			DefaultQuestionCount: 10,
			DefaultMinutesPerDay: 20,
			SessionHistoryDays:   7,
		},
	}
}

// seedCatalog creates one category with two topics and count questions per
// topic, alternating correct answers between A and B.
func seedCatalog(t *testing.T, db *gorm.DB, perTopic int) (model.Category, []model.Topic, []model.Question) {
	t.Helper()

	category := model.Category{Name: "Math"}
	require.NoError(t, db.Create(&category).Error)

	topics := []model.Topic{
		{CategoryID: category.ID, Name: "Algebra"},
		{CategoryID: category.ID, Name: "Geometry"},
	}
	require.NoError(t, db.Create(&topics).Error)

	var questions []model.Question
	for _, topic := range topics {
		for i := 0; i < perTopic; i++ {
			answer := "A"
			if i%2 == 1 {
				answer = "B"
			}
			topicID := topic.ID
			questions = append(questions, model.Question{
				CategoryID:    category.ID,
				TopicID:       &topicID,
				QuestionText:  fmt.Sprintf("%s question %d", topic.Name, i+1),
				OptionA:       "first",
				OptionB:       "second",
				OptionC:       "third",
				OptionD:       "fourth",
				CorrectAnswer: answer,
				Difficulty:    i%5 + 1,
			})
		}
	}
	require.NoError(t, db.Create(&questions).Error)
	return category, topics, questions
}
