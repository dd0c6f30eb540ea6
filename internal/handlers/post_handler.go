package handlers

import (
	"errors"
	"log"

	"contactboard/internal/repositories"
	"contactboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service  *services.PostService
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service:  service,
		validate: newValidate(),
	}
}

// RegisterRoutes registers the post routes with the Fiber app.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleListPosts)
	postRoutes.Get("/:id", h.HandleGetPostByID)
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Put("/:id", h.HandleUpdatePost)
	postRoutes.Delete("/:id", h.HandleDeletePost)
}

// HandleListPosts retrieves posts with optional search and sort query
// parameters, returning the page together with the total match count.
func (h *PostHandler) HandleListPosts(c *fiber.Ctx) error {
	q := repositories.ListQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
	posts, total, err := h.service.ListPosts(q)
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}
	return c.JSON(fiber.Map{
		"posts": posts,
		"total": total,
	})
}

// HandleGetPostByID retrieves a single post by its ID.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	id := c.Params("id")
	post, err := h.service.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Post not found")
		}
		log.Printf("Error getting post %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch post")
	}
	return c.JSON(post)
}

// HandleCreatePost validates the request body and creates a new post.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing post request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.normalize()
	if err := h.validate.Struct(&req); err != nil {
		return respondValidationFailed(c, validationDetails(err, postMessages))
	}

	post := req.toModel()
	if err := h.service.CreatePost(post); err != nil {
		log.Printf("Error creating post: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost replaces every editable field of an existing post.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")
	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing post request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.normalize()
	if err := h.validate.Struct(&req); err != nil {
		return respondValidationFailed(c, validationDetails(err, postMessages))
	}

	post, err := h.service.UpdatePost(id, req.toModel())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Post not found")
		}
		log.Printf("Error updating post %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to update post")
	}
	return c.JSON(post)
}

// HandleDeletePost removes a post by its ID.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeletePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Post not found")
		}
		log.Printf("Error deleting post %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
