package services

import (
	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/auth"
	"github.com/elevateconnect/backend/internal/pkg/email"
	"github.com/elevateconnect/backend/internal/pkg/tasks"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	DriveService        *DriveService
	ApplicationService  *ApplicationService
	ChatService         *ChatService
	QuestionService     *QuestionService
	NotificationService *NotificationService
	CourseService       *CourseService
	AnalyticsService    *AnalyticsService
}

// NewServices wires every service to its repositories and shared infrastructure
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	dispatcher *tasks.Dispatcher,
	adminEmail string,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService, adminEmail, logger),
		UserService:         NewUserService(repos.UserRepository, repos.ApplicationRepository, repos.CourseRepository, logger),
		DriveService:        NewDriveService(repos.DriveRepository, repos.UserRepository, repos.NotificationRepository, emailService, dispatcher, logger),
		ApplicationService:  NewApplicationService(repos.ApplicationRepository, repos.DriveRepository, repos.UserRepository, repos.NotificationRepository, dispatcher, logger),
		ChatService:         NewChatService(repos.ChatRepository, repos.UserRepository, logger),
		QuestionService:     NewQuestionService(repos.QuestionRepository, repos.UserRepository, repos.NotificationRepository, dispatcher, logger),
		NotificationService: NewNotificationService(repos.NotificationRepository, logger),
		CourseService:       NewCourseService(repos.CourseRepository, repos.UserRepository, logger),
		AnalyticsService:    NewAnalyticsService(repos.UserRepository, repos.DriveRepository, repos.ApplicationRepository, logger),
	}
}
