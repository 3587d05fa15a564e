package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/catalog"
	"github.com/abhisek/strengthmap/internal/history"
	"github.com/abhisek/strengthmap/internal/scoring"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string                  `json:"message"`
	Code    string                  `json:"code,omitempty"`
	Details []assessment.FieldError `json:"details,omitempty"`
}

// AnswersRequest carries a completed answer list.
type AnswersRequest struct {
	Answers []assessment.Answer `json:"answers"`
}

// ShareResponse carries share text.
type ShareResponse struct {
	Text string `json:"text"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "questions": catalog.Count()})
}

func (s *Server) listQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}

func (s *Server) analyze(c *gin.Context) {
	answers, ok := s.bindAnswers(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, scoring.Analyze(answers))
}

func (s *Server) createAssessment(c *gin.Context) {
	answers, ok := s.bindAnswers(c)
	if !ok {
		return
	}
	r, err := s.history.Record(c.Request.Context(), answers)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (s *Server) listAssessments(c *gin.Context) {
	list, err := s.history.List(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getAssessment(c *gin.Context) {
	r, err := s.history.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) deleteAssessment(c *gin.Context) {
	if err := s.history.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) compareAssessment(c *gin.Context) {
	var (
		cmp history.Comparison
		err error
	)
	if prev := c.Query("previous"); prev != "" {
		cmp, err = s.history.CompareByID(c.Request.Context(), c.Param("id"), prev)
	} else {
		cmp, err = s.history.CompareWithPrevious(c.Request.Context(), c.Param("id"))
	}
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (s *Server) shareAssessment(c *gin.Context) {
	text, err := s.history.Share(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ShareResponse{Text: text})
}

// bindAnswers decodes and validates an AnswersRequest. It writes the error
// response itself and reports false on failure.
func (s *Server) bindAnswers(c *gin.Context) ([]assessment.Answer, bool) {
	var req AnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body: " + err.Error(), Code: "bad_request"})
		return nil, false
	}
	if err := assessment.ValidateAnswers(req.Answers); err != nil {
		s.handleError(c, err)
		return nil, false
	}
	return req.Answers, true
}

func (s *Server) handleError(c *gin.Context, err error) {
	var verr *assessment.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "validation failed", Code: "invalid", Details: verr.Fields})
	case errors.Is(err, history.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error(), Code: "not_found"})
	case errors.Is(err, history.ErrNoPrevious):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error(), Code: "no_previous"})
	default:
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error", Code: "internal"})
	}
}
