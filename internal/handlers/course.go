package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Diatessaron/Best-Course-Ever/internal/middleware"
	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/Diatessaron/Best-Course-Ever/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CourseHandler handles course HTTP requests.
type CourseHandler struct {
	courses repository.CourseRepository
	logger  *slog.Logger
}

// NewCourseHandler creates a new CourseHandler instance.
func NewCourseHandler(courses repository.CourseRepository, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{courses: courses, logger: logger}
}

// CreateCourseRequest represents the course creation payload.
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Lectures    []string `json:"lectures,omitempty"`
}

// List godoc
// @Summary List courses
// @Tags courses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list courses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// Get godoc
// @Summary Get a course by id
// @Tags courses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
			return
		}
		h.logger.Error("failed to get course", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// Create godoc
// @Summary Create a course
// @Description Requires the AUTHOR or ADMIN role; the caller becomes the author
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "New course"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	course := &models.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    principal.UserID,
		Lectures:    req.Lectures,
	}
	if err := h.courses.Create(c.Request.Context(), course); err != nil {
		h.logger.Error("failed to create course", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, course)
}
