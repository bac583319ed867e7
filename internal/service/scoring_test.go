package service

import (
	"testing"

	"github.com/AaronM524/SAT-Prep/internal/model"
)

func TestTestScore(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{name: "seven of ten", correct: 7, total: 10, want: 70},
		{name: "perfect", correct: 20, total: 20, want: 100},
		{name: "zero correct", correct: 0, total: 10, want: 0},
		{name: "half up rounding", correct: 1, total: 8, want: 13}, // 12.5 rounds up
		{name: "two thirds", correct: 2, total: 3, want: 67},
		{name: "empty test does not divide by zero", correct: 0, total: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TestScore(tt.correct, tt.total); got != tt.want {
				t.Errorf("TestScore(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestMasteryLevel(t *testing.T) {
	tests := []struct {
		name      string
		attempted int
		accuracy  float64
		want      int
	}{
		{name: "mastered at exact floor", attempted: 50, accuracy: 90, want: 5},
		{name: "high accuracy below attempt floor", attempted: 49, accuracy: 95, want: 4},
		{name: "proficient at exact floor", attempted: 30, accuracy: 80, want: 4},
		{name: "accuracy just under proficient floor", attempted: 30, accuracy: 79.9, want: 3},
		{name: "developing at exact floor", attempted: 20, accuracy: 70, want: 3},
		{name: "learning at exact floor", attempted: 10, accuracy: 60, want: 2},
		{name: "few attempts stay beginner", attempted: 5, accuracy: 100, want: 1},
		{name: "no attempts", attempted: 0, accuracy: 0, want: 1},
		{name: "many attempts low accuracy", attempted: 100, accuracy: 40, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MasteryLevel(tt.attempted, tt.accuracy); got != tt.want {
				t.Errorf("MasteryLevel(%d, %.1f) = %d, want %d", tt.attempted, tt.accuracy, got, tt.want)
			}
		})
	}
}

func TestPlanPriority(t *testing.T) {
	progress := func(attempted int, accuracy float64) *model.UserProgress {
		return &model.UserProgress{QuestionsAttempted: attempted, Accuracy: accuracy}
	}
	tests := []struct {
		name     string
		progress *model.UserProgress
		want     string
	}{
		{name: "no progress row", progress: nil, want: model.PriorityHigh},
		{name: "under explored", progress: progress(4, 100), want: model.PriorityHigh},
		{name: "struggling", progress: progress(10, 59.9), want: model.PriorityHigh},
		{name: "middling", progress: progress(10, 60), want: model.PriorityMedium},
		{name: "almost strong", progress: progress(10, 79.9), want: model.PriorityMedium},
		{name: "strong", progress: progress(10, 80), want: model.PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlanPriority(tt.progress); got != tt.want {
				t.Errorf("PlanPriority() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMinutesFromSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{seconds: 0, want: 0},
		{seconds: 1, want: 1},
		{seconds: 60, want: 1},
		{seconds: 61, want: 2},
		{seconds: 600, want: 10},
		{seconds: -5, want: 0},
	}
	for _, tt := range tests {
		if got := MinutesFromSeconds(tt.seconds); got != tt.want {
			t.Errorf("MinutesFromSeconds(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(3, 4); got != 75 {
		t.Errorf("Accuracy(3, 4) = %f, want 75", got)
	}
	if got := Accuracy(0, 0); got != 0 {
		t.Errorf("Accuracy(0, 0) = %f, want 0", got)
	}
}
