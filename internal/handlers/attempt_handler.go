package handlers

import (
	"net/http"

	"github.com/bhosaleparag/tution-platform-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

// StartAttempt opens a new in-progress attempt on a published quiz.
// POST /quizzes/:id/attempts
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	attempt, err := h.Service.Start(c.Request.Context(),
		c.Param("id"),
		c.GetHeader(HeaderUserID),
		c.GetHeader(HeaderUserName),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

type submitBody struct {
	QuizID    string            `json:"quiz_id" binding:"required"`
	Answers   map[string]string `json:"answers"`
	TimeSpent int               `json:"time_spent"`

	// Tallies older clients computed locally. Only consulted when the body
	// has no answers field; otherwise the server re-grades.
	Score           int `json:"score"`
	CorrectCount    int `json:"correct_count"`
	WrongCount      int `json:"wrong_count"`
	UnansweredCount int `json:"unanswered_count"`
	TotalMarks      int `json:"total_marks"`
}

// SubmitAttempt closes an attempt with whatever answers were collected,
// whether the student submitted or the client-side timer ran out.
// POST /attempts/:id/submit
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	var body submitBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Submit(c.Request.Context(), service.SubmitRequest{
		AttemptID:       c.Param("id"),
		QuizID:          body.QuizID,
		StudentID:       c.GetHeader(HeaderUserID),
		Answers:         body.Answers,
		TimeSpent:       body.TimeSpent,
		Score:           body.Score,
		CorrectCount:    body.CorrectCount,
		WrongCount:      body.WrongCount,
		UnansweredCount: body.UnansweredCount,
		TotalMarks:      body.TotalMarks,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
