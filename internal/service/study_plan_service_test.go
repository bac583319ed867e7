package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/model"
	"github.com/AaronM524/SAT-Prep/internal/repository"
)

func newPlanService(db *gorm.DB) StudyPlanService {
	return NewStudyPlanService(
		repository.NewStudyPlanRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewProgressRepository(db),
		db,
	)
}

func TestGeneratePlan_CoversEveryTopic(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db, 3)
	svc := newPlanService(db)

	resp, err := svc.GeneratePlan("user-1")
	require.NoError(t, err)
	require.Len(t, resp.Plans, 2)

	today := time.Now().Format(dateLayout)
	for _, plan := range resp.Plans {
		assert.Equal(t, model.PriorityHigh, plan.Priority, "unexplored topics start high")
		assert.Equal(t, today, plan.ScheduledDate)
		assert.False(t, plan.Completed)
		assert.NotEmpty(t, plan.Topic.Name)
		assert.NotEmpty(t, plan.Topic.Category.Name)
	}
}

func TestGeneratePlan_PrioritiesFollowProgress(t *testing.T) {
	db := newTestDB(t)
	_, topics, _ := seedCatalog(t, db, 3)
	progressSvc := NewProgressService(repository.NewProgressRepository(db), db)

	// Strong on the first topic, middling on the second.
	_, err := progressSvc.UpdateProgress("user-1", dto.UpdateProgressRequest{TopicID: topics[0].ID, QuestionsAttempted: 10, QuestionsCorrect: 9})
	require.NoError(t, err)
	_, err = progressSvc.UpdateProgress("user-1", dto.UpdateProgressRequest{TopicID: topics[1].ID, QuestionsAttempted: 10, QuestionsCorrect: 7})
	require.NoError(t, err)

	resp, err := newPlanService(db).GeneratePlan("user-1")
	require.NoError(t, err)
	require.Len(t, resp.Plans, 2)

	byTopic := make(map[uint]string)
	for _, plan := range resp.Plans {
		byTopic[plan.TopicID] = plan.Priority
	}
	assert.Equal(t, model.PriorityLow, byTopic[topics[0].ID])
	assert.Equal(t, model.PriorityMedium, byTopic[topics[1].ID])
}

func TestGeneratePlan_PreservesCompletedRows(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db, 3)
	svc := newPlanService(db)

	first, err := svc.GeneratePlan("user-1")
	require.NoError(t, err)

	done := true
	completedPlan, err := svc.TogglePlan("user-1", dto.TogglePlanRequest{PlanID: first.Plans[0].ID, Completed: &done})
	require.NoError(t, err)

	second, err := svc.GeneratePlan("user-1")
	require.NoError(t, err)
	assert.Len(t, second.Plans, 2, "regeneration returns a fresh incomplete row per topic")

	var kept model.StudyPlan
	require.NoError(t, db.First(&kept, completedPlan.ID).Error)
	assert.True(t, kept.Completed, "completed rows survive regeneration as history")

	var total int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Where("user_id = ?", "user-1").Count(&total).Error)
	assert.EqualValues(t, 3, total)
}

func TestGeneratePlan_OtherUsersUntouched(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db, 3)
	svc := newPlanService(db)

	other, err := svc.GeneratePlan("user-2")
	require.NoError(t, err)

	_, err = svc.GeneratePlan("user-1")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Where("user_id = ?", "user-2").Count(&count).Error)
	assert.EqualValues(t, len(other.Plans), count)
}

func TestTogglePlan(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db, 3)
	svc := newPlanService(db)

	resp, err := svc.GeneratePlan("user-1")
	require.NoError(t, err)
	planID := resp.Plans[0].ID

	done := true
	plan, err := svc.TogglePlan("user-1", dto.TogglePlanRequest{PlanID: planID, Completed: &done})
	require.NoError(t, err)
	assert.True(t, plan.Completed)
	assert.NotNil(t, plan.CompletedAt)

	undone := false
	plan, err = svc.TogglePlan("user-1", dto.TogglePlanRequest{PlanID: planID, Completed: &undone})
	require.NoError(t, err)
	assert.False(t, plan.Completed)
	assert.Nil(t, plan.CompletedAt, "unchecking clears the completion stamp")

	_, err = svc.TogglePlan("user-2", dto.TogglePlanRequest{PlanID: planID, Completed: &done})
	assert.True(t, errors.Is(err, ErrPlanNotFound), "plans are scoped to their owner")
}

func TestGeneratePlan_EmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := newPlanService(db)

	_, err := svc.GeneratePlan("user-1")
	assert.True(t, errors.Is(err, ErrNoTopics))
}
