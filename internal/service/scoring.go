package service

import (
	"sort"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
)

// Tally is the outcome of grading one set of answers against a quiz's answer
// key. Correct + Wrong + Unanswered always equals the number of questions.
type Tally struct {
	Score           int
	CorrectCount    int
	WrongCount      int
	UnansweredCount int
}

// ScoreAnswers grades answers against the quiz's question list, walking
// questions in question-number order. An answer matching the key adds the
// question's marks; a present but wrong answer counts as wrong; an absent
// answer counts as unanswered. No partial credit, no negative marking.
//
// Pure and deterministic: used both when an attempt is graded at submission
// and when historical tallies are re-verified.
func ScoreAnswers(questions []models.Question, answers map[string]string) Tally {
	ordered := make([]models.Question, len(questions))
	copy(ordered, questions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].QuestionNumber < ordered[j].QuestionNumber
	})

	var t Tally
	for _, q := range ordered {
		selected, ok := answers[q.ID]
		switch {
		case ok && selected == q.CorrectAnswer:
			t.Score += q.Marks
			t.CorrectCount++
		case ok:
			t.WrongCount++
		default:
			t.UnansweredCount++
		}
	}
	return t
}
