package handlers

import (
	"net/http"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
	"github.com/bhosaleparag/tution-platform-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

type questionBody struct {
	QuestionNumber int      `json:"question_number" binding:"required"`
	Text           string   `json:"text" binding:"required"`
	Options        []string `json:"options" binding:"required"`
	CorrectAnswer  string   `json:"correct_answer" binding:"required"`
	Marks          int      `json:"marks" binding:"required"`
	Explanation    string   `json:"explanation"`
}

type publishBody struct {
	Title            string         `json:"title" binding:"required"`
	ClassID          string         `json:"class_id"`
	SubjectID        string         `json:"subject_id"`
	TimeLimitSeconds int            `json:"time_limit_seconds" binding:"required"`
	AllowRetake      bool           `json:"allow_retake"`
	Questions        []questionBody `json:"questions" binding:"required"`
}

func toQuestions(bodies []questionBody) []models.Question {
	questions := make([]models.Question, 0, len(bodies))
	for _, b := range bodies {
		questions = append(questions, models.Question{
			QuestionNumber: b.QuestionNumber,
			Text:           b.Text,
			Options:        b.Options,
			CorrectAnswer:  b.CorrectAnswer,
			Marks:          b.Marks,
			Explanation:    b.Explanation,
		})
	}
	return questions
}

// PublishQuiz creates a quiz together with its question set.
// POST /quizzes
func (h *QuizHandler) PublishQuiz(c *gin.Context) {
	var body publishBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz := &models.Quiz{
		Title:            body.Title,
		ClassID:          body.ClassID,
		SubjectID:        body.SubjectID,
		CreatedBy:        c.GetHeader(HeaderUserID),
		TimeLimitSeconds: body.TimeLimitSeconds,
		AllowRetake:      body.AllowRetake,
	}
	if err := h.Service.Publish(c.Request.Context(), quiz, toQuestions(body.Questions)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// ReplaceQuestions swaps the quiz's question set atomically (owner only).
// PUT /quizzes/:id/questions
func (h *QuizHandler) ReplaceQuestions(c *gin.Context) {
	var body struct {
		Questions []questionBody `json:"questions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.Service.ReplaceQuestions(c.Request.Context(),
		c.Param("id"), c.GetHeader(HeaderUserID), toQuestions(body.Questions))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GetQuiz returns one quiz with its questions, answer key stripped unless
// the requester owns it.
// GET /quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, questions, err := h.Service.Get(c.Request.Context(), c.Param("id"), c.GetHeader(HeaderUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz, "questions": questions})
}

// ListQuizzes returns published quizzes, filterable by class_id/subject_id.
// GET /quizzes
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Service.List(c.Request.Context(), c.Query("class_id"), c.Query("subject_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}
