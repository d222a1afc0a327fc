package models

import "time"

// Course is a published course. Lecture content lives in its own service;
// only the ids are referenced here.
type Course struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	AuthorID    string    `json:"author_id" gorm:"column:author_id;type:uuid;not null"`
	Lectures    []string  `json:"lectures,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Course model.
func (Course) TableName() string {
	return "courses"
}
