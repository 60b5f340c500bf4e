package handlers

import (
	"net/http"

	"github.com/bhosaleparag/tution-platform-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

// GetStudentResults returns a student's latest completed attempt per quiz
// with aggregate stats.
// GET /students/:id/results
func (h *ResultHandler) GetStudentResults(c *gin.Context) {
	view, err := h.Service.StudentResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetQuizSubmissions returns the teacher's review view for one quiz. Only
// the quiz owner may call it.
// GET /quizzes/:id/submissions
func (h *ResultHandler) GetQuizSubmissions(c *gin.Context) {
	view, err := h.Service.QuizSubmissions(c.Request.Context(), c.Param("id"), c.GetHeader(HeaderUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
