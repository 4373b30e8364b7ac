package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
)

// CourseService handles course management and assignment
type CourseService struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Create registers a new course
func (s *CourseService) Create(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	course := &models.Course{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
		Semester:    req.Semester,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// List retrieves courses, optionally filtered by semester
func (s *CourseService) List(ctx context.Context, semester int) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, semester)
}

// Update rewrites a course's fields
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Code = req.Code
	course.Name = req.Name
	course.Description = req.Description
	course.Credits = req.Credits
	course.Semester = req.Semester

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// Assign enrols a student in a course
func (s *CourseService) Assign(ctx context.Context, courseID, userID int64) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return s.courseRepo.AssignToUser(ctx, courseID, userID)
}

// Unassign removes a student's enrolment in a course
func (s *CourseService) Unassign(ctx context.Context, courseID, userID int64) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return s.courseRepo.UnassignFromUser(ctx, courseID, userID)
}

// ListByUser retrieves the courses assigned to a user
func (s *CourseService) ListByUser(ctx context.Context, userID int64) ([]*models.Course, error) {
	return s.courseRepo.ListByUser(ctx, userID)
}
