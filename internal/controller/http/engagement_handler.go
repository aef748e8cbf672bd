package http

import (
	"net/http"

	"vocal-feed/internal/usecase"
	"vocal-feed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	commentUseCase     usecase.CommentUseCase
	reactionUseCase    usecase.ReactionUseCase
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewEngagementHandler(
	commentUseCase usecase.CommentUseCase,
	reactionUseCase usecase.ReactionUseCase,
	interactionUseCase usecase.InteractionUseCase,
	logger *logger.Logger,
) *EngagementHandler {
	return &EngagementHandler{
		commentUseCase:     commentUseCase,
		reactionUseCase:    reactionUseCase,
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type CreateCommentRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

type CreateReactionRequest struct {
	PostID string `json:"postId"`
	Emoji  string `json:"emoji"`
}

type CreateInteractionRequest struct {
	PostID string `json:"postId"`
	Type   string `json:"type" enums:"share"`
}

// ListComments godoc
// @Summary      Comments of a post
// @Tags         comments
// @Produce      json
// @Param        postId query string true "Post ID"
// @Success      200  {array}   entity.Comment
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /comments [get]
func (h *EngagementHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUseCase.ListComments(c.Request.Context(), c.Query("postId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /comments [post]
func (h *EngagementHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), c.GetString("user_id"), req.PostID, req.Content)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete own comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ListReactions godoc
// @Summary      Reactions of a post
// @Tags         reactions
// @Produce      json
// @Param        postId query string true "Post ID"
// @Success      200  {array}   entity.Reaction
// @Router       /reactions [get]
func (h *EngagementHandler) ListReactions(c *gin.Context) {
	reactions, err := h.reactionUseCase.ListReactions(c.Request.Context(), c.Query("postId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch reactions")
		return
	}
	c.JSON(http.StatusOK, reactions)
}

// CountReactions godoc
// @Summary      Reaction counts per emoji
// @Tags         reactions
// @Produce      json
// @Param        postId query string true "Post ID"
// @Success      200  {array}   entity.EmojiCount
// @Router       /reactions/counts [get]
func (h *EngagementHandler) CountReactions(c *gin.Context) {
	counts, err := h.reactionUseCase.CountReactions(c.Request.Context(), c.Query("postId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to count reactions")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// AddReaction godoc
// @Summary      React to a post
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateReactionRequest true "Reaction"
// @Success      201  {object}  entity.Reaction
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /reactions [post]
func (h *EngagementHandler) AddReaction(c *gin.Context) {
	var req CreateReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reaction, err := h.reactionUseCase.AddReaction(c.Request.Context(), c.GetString("user_id"), req.PostID, req.Emoji)
	if err != nil {
		respondError(c, h.logger, err, "Failed to add reaction")
		return
	}
	c.JSON(http.StatusCreated, reaction)
}

// RemoveReaction godoc
// @Summary      Remove own reaction
// @Tags         reactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Reaction ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reactions/{id} [delete]
func (h *EngagementHandler) RemoveReaction(c *gin.Context) {
	if err := h.reactionUseCase.RemoveReaction(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, h.logger, err, "Failed to remove reaction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reaction removed"})
}

// RemoveReactionByEmoji godoc
// @Summary      Remove own reaction by emoji
// @Tags         reactions
// @Produce      json
// @Security     BearerAuth
// @Param        postId query string true "Post ID"
// @Param        emoji  query string true "Emoji"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reactions [delete]
func (h *EngagementHandler) RemoveReactionByEmoji(c *gin.Context) {
	err := h.reactionUseCase.RemoveReactionByEmoji(c.Request.Context(), c.GetString("user_id"), c.Query("postId"), c.Query("emoji"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to remove reaction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reaction removed"})
}

// ListInteractions godoc
// @Summary      Interactions of a post
// @Tags         interactions
// @Produce      json
// @Param        postId query string true "Post ID"
// @Success      200  {array}   entity.Interaction
// @Router       /interactions [get]
func (h *EngagementHandler) ListInteractions(c *gin.Context) {
	interactions, err := h.interactionUseCase.ListInteractions(c.Request.Context(), c.Query("postId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch interactions")
		return
	}
	c.JSON(http.StatusOK, interactions)
}

// CountInteractions godoc
// @Summary      Interaction counts per type
// @Tags         interactions
// @Produce      json
// @Param        postId query string true "Post ID"
// @Success      200  {array}   entity.TypeCount
// @Router       /interactions/counts [get]
func (h *EngagementHandler) CountInteractions(c *gin.Context) {
	counts, err := h.interactionUseCase.CountInteractions(c.Request.Context(), c.Query("postId"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to count interactions")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// RecordInteraction godoc
// @Summary      Share a post
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateInteractionRequest true "Interaction"
// @Success      201  {object}  entity.Interaction
// @Failure      400  {object}  map[string]interface{}
// @Router       /interactions [post]
func (h *EngagementHandler) RecordInteraction(c *gin.Context) {
	var req CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interaction, err := h.interactionUseCase.RecordInteraction(c.Request.Context(), c.GetString("user_id"), req.PostID, req.Type)
	if err != nil {
		respondError(c, h.logger, err, "Failed to record interaction")
		return
	}
	c.JSON(http.StatusCreated, interaction)
}
