package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"gorm.io/gorm"
)

// ErrCourseNotFound is returned when no course matches the lookup.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines the interface for course data operations.
type CourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository instance.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to find course by id %s: %w", id, err)
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}
