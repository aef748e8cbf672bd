package http

import (
	"net/http"
	"strconv"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/usecase"
	"vocal-feed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Type            string   `json:"type" example:"Post A"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Hashtags        []string `json:"hashtags"`
	TTSInstructions string   `json:"ttsInstructions"`
	Visibility      string   `json:"visibility" enums:"public,private"`
}

func (r CreatePostRequest) toInput() entity.PostInput {
	return entity.PostInput{
		Type:            r.Type,
		Title:           r.Title,
		Content:         r.Content,
		Hashtags:        r.Hashtags,
		TTSInstructions: r.TTSInstructions,
		Visibility:      r.Visibility,
	}
}

// CreatePost godoc
// @Summary      Publish a post
// @Description  Create a published post. Type "Post B" requires a title.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, req.toInput())
	if err != nil {
		respondError(c, h.logger, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// SaveDraft godoc
// @Summary      Save a draft
// @Description  Store a new draft. Every call inserts a new draft; the latest one is returned by GET /posts/draft.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Draft"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /posts/draft [post]
func (h *PostHandler) SaveDraft(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.SaveDraft(c.Request.Context(), userID, req.toInput())
	if err != nil {
		respondError(c, h.logger, err, "Failed to save draft")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetLatestDraft godoc
// @Summary      Latest draft
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/draft [get]
func (h *PostHandler) GetLatestDraft(c *gin.Context) {
	post, err := h.postUseCase.GetLatestDraft(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch draft")
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      Public feed
// @Description  Published public posts, newest first.
// @Tags         posts
// @Produce      json
// @Param        page  query int false "Page (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultPageSize)))

	posts, err := h.postUseCase.ListPosts(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"page":  page,
		"count": len(posts),
	})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Drafts and private posts are only visible to their author.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Delete one of your own posts.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	if err := h.postUseCase.DeletePost(c.Request.Context(), postID, c.GetString("user_id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// GetMyPosts godoc
// @Summary      My posts
// @Description  All posts of the caller, drafts and private ones included.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Post
// @Router       /users/me/posts [get]
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	posts, err := h.postUseCase.GetUserPosts(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// SearchPosts godoc
// @Summary      Search posts
// @Description  Case-insensitive match on content, title and hashtags of public posts.
// @Tags         search
// @Produce      json
// @Param        query query string true "Search text"
// @Success      200  {array}   entity.Post
// @Failure      400  {object}  map[string]interface{}
// @Router       /search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	posts, err := h.postUseCase.SearchPosts(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to search posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}
