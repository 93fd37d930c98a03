package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/form"
	"github.com/abhisek/shindan/internal/quiz"
)

// stateResponse is the client view of a session.
type stateResponse struct {
	ID       string         `json:"id"`
	Step     int            `json:"step"`
	Total    int            `json:"total"`
	Progress float64        `json:"progress"`
	Complete bool           `json:"complete"`
	Question *quiz.Question `json:"question,omitempty"`
	Answers  quiz.AnswerSet `json:"answers"`
}

// newState snapshots a session. The caller holds sess.mu.
func newState(sess *session) stateResponse {
	st := stateResponse{
		ID:       sess.id,
		Step:     sess.engine.Step(),
		Total:    sess.engine.Len(),
		Progress: sess.engine.ProgressFraction(),
		Complete: sess.engine.IsComplete(),
		Answers:  sess.engine.Answers(),
	}
	if q, ok := sess.engine.CurrentQuestion(); ok {
		st.Question = &q
	}
	return st
}

// lookup fetches the session named by the :id parameter, writing a 404 if
// it does not exist or has expired.
func (s *Server) lookup(c *gin.Context) (*session, bool) {
	sess, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	return sess, true
}

// engineError maps quiz errors onto HTTP statuses.
func engineError(c *gin.Context, err error) {
	var ve *quiz.ValidationError
	switch {
	case errors.As(err, &ve):
		msg := err.Error()
		if errors.Is(err, quiz.ErrNoSelection) {
			msg = "選択肢を選んでください"
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       msg,
			"question_id": ve.QuestionID,
		})
	case quiz.IsState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (s *Server) withLink(r diagnosis.Result) diagnosis.Result {
	if s.link != nil {
		r.DetailURL = s.link(r.DetailURL)
	}
	return r
}

func (s *Server) createSession(c *gin.Context) {
	sess := s.sessions.create()
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusCreated, newState(sess))
}

func (s *Server) getSession(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, newState(sess))
}

func (s *Server) answer(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.engine.Advance(req.Value); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, newState(sess))
}

func (s *Server) back(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.engine.Retreat(); err != nil {
		engineError(c, err)
		return
	}
	sess.result = nil
	c.JSON(http.StatusOK, newState(sess))
}

func (s *Server) restart(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.engine.Restart()
	sess.result = nil
	c.JSON(http.StatusOK, newState(sess))
}

// sessionResult resolves a completed session. The first call records the
// result; later calls return the same result without recording it again.
func (s *Server) sessionResult(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.engine.IsComplete() {
		c.JSON(http.StatusConflict, gin.H{"error": "Diagnosis is not complete"})
		return
	}
	if sess.result == nil {
		res, err := s.service.Complete(c.Request.Context(), sess.engine.Answers())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		sess.result = &res
	}
	c.JSON(http.StatusOK, s.withLink(sess.result.Clone()))
}

func (s *Server) getResult(c *gin.Context) {
	res, err := s.service.Latest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No saved result"})
		return
	}
	c.JSON(http.StatusOK, s.withLink(*res))
}

func (s *Server) deleteResult(c *gin.Context) {
	if err := s.service.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.faq})
}

func (s *Server) createInquiry(c *gin.Context) {
	var in form.Inquiry
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if errs := in.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": errs.Map(),
		})
		return
	}

	if s.inquiries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Inquiries are not available"})
		return
	}
	id, err := s.inquiries.AppendInquiry(c.Request.Context(), in.Data())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
