package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"vocal-feed/internal/audio"
	"vocal-feed/internal/usecase"
	"vocal-feed/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AudioFetcher opens stored artifacts by fingerprint.
type AudioFetcher interface {
	Fetch(ctx context.Context, fingerprint string) (io.ReadCloser, error)
}

type TTSHandler struct {
	postUseCase usecase.PostUseCase
	audio       AudioFetcher
	logger      *logger.Logger
}

func NewTTSHandler(postUseCase usecase.PostUseCase, audio AudioFetcher, logger *logger.Logger) *TTSHandler {
	return &TTSHandler{
		postUseCase: postUseCase,
		audio:       audio,
		logger:      logger,
	}
}

type GenerateAudioRequest struct {
	Text         string `json:"text"`
	Instructions string `json:"instructions"`
	PostID       string `json:"postId"`
	Async        bool   `json:"async"`
}

// GenerateAudio godoc
// @Summary      Generate speech
// @Description  Returns the artifact URL for the text and instructions, generating it on first request. With postId the URL is attached to that post. With async=true and a queue configured, the job is queued and 202 is returned.
// @Tags         tts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateAudioRequest true "Text to speak"
// @Success      200  {object}  map[string]interface{}
// @Success      202  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]interface{}
// @Router       /tts/generate [post]
func (h *TTSHandler) GenerateAudio(c *gin.Context) {
	var req GenerateAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if req.Async {
		result, queued, err := h.postUseCase.EnqueueAudio(ctx, c.GetString("user_id"), req.Text, req.Instructions, req.PostID)
		if err != nil {
			respondError(c, h.logger, err, "Failed to generate audio")
			return
		}
		status := http.StatusOK
		if queued {
			status = http.StatusAccepted
		}
		c.JSON(status, gin.H{
			"audioUrl": result.URL,
			"success":  true,
			"queued":   queued,
		})
		return
	}

	result, err := h.postUseCase.GenerateAndAttachAudio(ctx, req.Text, req.Instructions, req.PostID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate audio")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audioUrl": result.URL,
		"success":  true,
		"created":  result.Created,
	})
}

// StreamAudio godoc
// @Summary      Stream audio
// @Tags         tts
// @Produce      audio/mpeg
// @Param        audioId path string true "Artifact fingerprint"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /audio/{audioId} [get]
func (h *TTSHandler) StreamAudio(c *gin.Context) {
	audioID := c.Param("audioId")

	rc, err := h.audio.Fetch(c.Request.Context(), audioID)
	if err != nil {
		if errors.Is(err, audio.ErrArtifactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
			return
		}
		h.logger.Error("Failed to open audio %s: %v", audioID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stream audio"})
		return
	}
	defer rc.Close()

	// Artifacts are content-addressed and never change.
	c.DataFromReader(http.StatusOK, -1, audio.ContentType, rc, map[string]string{
		"Content-Disposition": `inline; filename="` + audioID + `.mp3"`,
		"Cache-Control":       "public, max-age=31536000, immutable",
	})
}
