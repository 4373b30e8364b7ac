package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	DriveRepository        *DriveRepository
	ApplicationRepository  *ApplicationRepository
	ChatRepository         *ChatRepository
	NotificationRepository *NotificationRepository
	QuestionRepository     *QuestionRepository
	CourseRepository       *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		DriveRepository:        NewDriveRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		ChatRepository:         NewChatRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		QuestionRepository:     NewQuestionRepository(db),
		CourseRepository:       NewCourseRepository(db),
	}
}
