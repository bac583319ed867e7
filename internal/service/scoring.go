package service

import (
	"math"

	"github.com/AaronM524/SAT-Prep/internal/model"
)

// TestScore computes the percentage score for a completed test, rounded
// half-up. A test with no questions scores 0 rather than dividing by zero.
func TestScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Accuracy returns the cumulative accuracy percentage (0-100).
func Accuracy(correct, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return 100 * float64(correct) / float64(attempted)
}

// MasteryLevel classifies cumulative attempts and accuracy into levels 1-5.
// Rules are checked strictly in descending order; the first match wins.
//
//	attempted >= 50 && accuracy >= 90 -> 5 (mastered)
//	attempted >= 30 && accuracy >= 80 -> 4 (proficient)
//	attempted >= 20 && accuracy >= 70 -> 3 (developing)
//	attempted >= 10 && accuracy >= 60 -> 2 (learning)
//	otherwise                         -> 1 (beginner)
func MasteryLevel(attempted int, accuracy float64) int {
	switch {
	case attempted >= 50 && accuracy >= 90:
		return 5
	case attempted >= 30 && accuracy >= 80:
		return 4
	case attempted >= 20 && accuracy >= 70:
		return 3
	case attempted >= 10 && accuracy >= 60:
		return 2
	default:
		return 1
	}
}

// PlanPriority assigns a study-plan tier from a topic's progress. A topic
// with no progress row, or fewer than 5 attempts, is treated as unexplored.
func PlanPriority(progress *model.UserProgress) string {
	switch {
	case progress == nil || progress.QuestionsAttempted < 5:
		return model.PriorityHigh
	case progress.Accuracy < 60:
		return model.PriorityHigh
	case progress.Accuracy < 80:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// MinutesFromSeconds converts elapsed seconds to whole study minutes,
// rounding up so any activity counts for at least one minute.
func MinutesFromSeconds(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 59) / 60
}
