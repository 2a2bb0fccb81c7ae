package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nuros/internal/analysis"
	"nuros/internal/audio"
	"nuros/internal/logging"
	"nuros/internal/risk"
	"nuros/internal/services"
)

func (s *Server) handleHealth(c *gin.Context) {
	respondSuccess(c, gin.H{"status": "ok"})
}

// handleAnalyze accepts a WAV recording as the multipart field "audio" and
// runs the full extraction and evaluation pipeline. When the same subject_id
// uploads again, the previous run serves as the vocal twin baseline.
func (s *Server) handleAnalyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.API.MaxUploadBytes)

	file, _, err := c.Request.FormFile("audio")
	if err != nil {
		respondError(c, http.StatusBadRequest, "multipart field 'audio' with a WAV recording is required")
		return
	}
	defer file.Close()

	stage, err := risk.ParseLifeStage(c.PostForm("life_stage"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	clip, err := audio.DecodeWAV(file)
	if err != nil {
		s.logger.Warn("upload rejected", logging.Error(err))
		respondError(c, services.HTTPStatus(err), services.UserMessage(err))
		return
	}

	subject := strings.TrimSpace(c.PostForm("subject_id"))
	if subject == "" {
		subject = analysis.NewPatientID()
	}

	result, err := s.session.Run(c.Request.Context(), clip, analysis.Options{
		SubjectID: subject,
		LifeStage: stage,
		Baseline:  s.baselineFor(subject),
	})
	if err != nil {
		s.logger.Warn("analysis failed",
			logging.String(logging.FieldSubjectID, subject),
			logging.Error(err))
		respondError(c, services.HTTPStatus(err), services.UserMessage(err))
		return
	}
	s.rememberBaseline(subject, result.Features)

	respondSuccess(c, result)
}
