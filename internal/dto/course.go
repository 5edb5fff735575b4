package dto

import "github.com/hyuga/course-scheduler-api/internal/models"

// CourseDTO represents a course in API responses
type CourseDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ToCourseDTO converts a Course model to CourseDTO
func ToCourseDTO(course models.Course) CourseDTO {
	return CourseDTO{
		ID:    course.ID,
		Name:  course.Name,
		Color: course.Color,
	}
}

// ToCourseDTOs converts a slice of courses
func ToCourseDTOs(courses []models.Course) []CourseDTO {
	dtos := make([]CourseDTO, len(courses))
	for i, course := range courses {
		dtos[i] = ToCourseDTO(course)
	}
	return dtos
}
