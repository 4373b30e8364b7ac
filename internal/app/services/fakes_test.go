package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// In-memory repository fakes. They are mutex-guarded because dispatcher
// tasks touch them from worker goroutines.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
	} else if user.ID > f.nextID {
		f.nextID = user.ID
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, user.Email) {
			f.mu.Unlock()
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.mu.Unlock()
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdateAccountStatus(ctx context.Context, userID int64, status models.AccountStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.AccountStatus = status
	return nil
}

func (f *fakeUserRepo) matchRoles(roles []models.Role) []*models.User {
	var out []*models.User
	for _, user := range f.users {
		for _, role := range roles {
			if user.Role == role {
				out = append(out, user)
				break
			}
		}
	}
	return out
}

func (f *fakeUserRepo) ListByRoles(ctx context.Context, roles ...models.Role) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.matchRoles(roles), nil
}

func (f *fakeUserRepo) ListEmailsByRoles(ctx context.Context, roles ...models.Role) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var emails []string
	for _, user := range f.matchRoles(roles) {
		if user.AccountStatus == models.AccountActive {
			emails = append(emails, user.Email)
		}
	}
	return emails, nil
}

func (f *fakeUserRepo) ListIDsByRoles(ctx context.Context, roles ...models.Role) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for _, user := range f.matchRoles(roles) {
		if user.AccountStatus == models.AccountActive {
			ids = append(ids, user.ID)
		}
	}
	return ids, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.matchRoles([]models.Role{role}))), nil
}

type fakeDriveRepo struct {
	mu     sync.Mutex
	nextID int64
	drives map[int64]*models.PlacementDrive
}

func newFakeDriveRepo() *fakeDriveRepo {
	return &fakeDriveRepo{drives: make(map[int64]*models.PlacementDrive)}
}

func (f *fakeDriveRepo) Create(ctx context.Context, drive *models.PlacementDrive) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	drive.ID = f.nextID
	if drive.ApprovalStatus == "" {
		drive.ApprovalStatus = models.ApprovalPending
	}
	copied := *drive
	f.drives[drive.ID] = &copied
	return nil
}

func (f *fakeDriveRepo) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	drive, ok := f.drives[id]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	copied := *drive
	return &copied, nil
}

func (f *fakeDriveRepo) List(ctx context.Context, filter repositories.DriveFilter) ([]*models.PlacementDrive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.PlacementDrive
	for _, drive := range f.drives {
		if filter.Status != nil && drive.ApprovalStatus != *filter.Status {
			continue
		}
		if filter.CreatedBy != nil && drive.CreatedBy != *filter.CreatedBy {
			continue
		}
		if filter.ActiveOnly {
			today := time.Now().UTC().Truncate(24 * time.Hour)
			if drive.Deadline.Before(today) {
				continue
			}
		}
		copied := *drive
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeDriveRepo) Update(ctx context.Context, drive *models.PlacementDrive) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.drives[drive.ID]
	if !ok {
		return apperrors.ErrDriveNotFound
	}
	drive.ApprovalStatus = existing.ApprovalStatus
	drive.CreatedBy = existing.CreatedBy
	copied := *drive
	f.drives[drive.ID] = &copied
	return nil
}

func (f *fakeDriveRepo) UpdateApproval(ctx context.Context, driveID, reviewerID int64, status models.ApprovalStatus, reason *string) (*models.PlacementDrive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	drive, ok := f.drives[driveID]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	if drive.ApprovalStatus != models.ApprovalPending {
		return nil, apperrors.ErrDriveNotPending
	}
	drive.ApprovalStatus = status
	drive.ReviewedBy = &reviewerID
	drive.RejectionReason = reason
	copied := *drive
	return &copied, nil
}

func (f *fakeDriveRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drives[id]; !ok {
		return apperrors.ErrDriveNotFound
	}
	delete(f.drives, id)
	return nil
}

func (f *fakeDriveRepo) CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, drive := range f.drives {
		if drive.ApprovalStatus == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeDriveRepo) RecentApprovedCompanies(ctx context.Context, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var companies []string
	for _, drive := range f.drives {
		if drive.ApprovalStatus == models.ApprovalApproved && len(companies) < limit {
			companies = append(companies, drive.CompanyName)
		}
	}
	return companies, nil
}

type fakeCourseRepo struct {
	mu         sync.Mutex
	nextID     int64
	courses    map[int64]*models.Course
	enrolments map[int64]map[int64]bool
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses:    make(map[int64]*models.Course),
		enrolments: make(map[int64]map[int64]bool),
	}
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	f.nextID++
	course.ID = f.nextID
	copied := *course
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseRepo) List(ctx context.Context, semester int) ([]*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Course
	for _, course := range f.courses {
		if semester > 0 && course.Semester != semester {
			continue
		}
		copied := *course
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	copied := *course
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	for _, set := range f.enrolments {
		delete(set, id)
	}
	return nil
}

func (f *fakeCourseRepo) AssignToUser(ctx context.Context, courseID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.enrolments[userID] == nil {
		f.enrolments[userID] = make(map[int64]bool)
	}
	f.enrolments[userID][courseID] = true
	return nil
}

func (f *fakeCourseRepo) UnassignFromUser(ctx context.Context, courseID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.enrolments[userID], courseID)
	return nil
}

func (f *fakeCourseRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Course
	for courseID := range f.enrolments[userID] {
		if course, ok := f.courses[courseID]; ok {
			copied := *course
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	nextID       int64
	applications map[int64]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[int64]*models.Application)}
}

func (f *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.applications {
		if existing.UserID == application.UserID && existing.DriveID == application.DriveID {
			return apperrors.ErrAlreadyApplied
		}
	}
	f.nextID++
	application.ID = f.nextID
	copied := *application
	f.applications[application.ID] = &copied
	return nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationRepo) List(ctx context.Context, filter repositories.ApplicationFilter) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Application
	for _, application := range f.applications {
		if filter.UserID != nil && application.UserID != *filter.UserID {
			continue
		}
		if filter.DriveID != nil && application.DriveID != *filter.DriveID {
			continue
		}
		if filter.Status != nil && application.Status != *filter.Status {
			continue
		}
		copied := *application
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

func (f *fakeApplicationRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, application := range f.applications {
		if application.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeApplicationRepo) CountByUserAndStatus(ctx context.Context, userID int64, status models.ApplicationStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, application := range f.applications {
		if application.UserID == userID && application.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeApplicationRepo) CountDistinctUsersByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[int64]struct{})
	for _, application := range f.applications {
		if application.Status == status {
			seen[application.UserID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	nextID        int64
	notifications []*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	notification.ID = f.nextID
	copied := *notification
	f.notifications = append(f.notifications, &copied)
	return nil
}

func (f *fakeNotificationRepo) CreateForUsers(ctx context.Context, userIDs []int64, message string, notificationType models.NotificationType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, userID := range userIDs {
		f.nextID++
		f.notifications = append(f.notifications, &models.Notification{
			ID:      f.nextID,
			UserID:  userID,
			Message: message,
			Type:    notificationType,
		})
	}
	return nil
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Notification
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			copied := *notification
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, notification := range f.notifications {
		if notification.ID == id && notification.UserID == userID {
			notification.IsRead = true
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			notification.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, notification := range f.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) all() []*models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Notification, 0, len(f.notifications))
	for _, notification := range f.notifications {
		copied := *notification
		out = append(out, &copied)
	}
	return out
}

type fakeChatRepo struct {
	mu     sync.Mutex
	nextID int64
	chats  []*models.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{}
}

func (f *fakeChatRepo) Create(ctx context.Context, chat *models.Chat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	chat.ID = f.nextID
	copied := *chat
	f.chats = append(f.chats, &copied)
	return nil
}

func (f *fakeChatRepo) GetConversation(ctx context.Context, selfID, partnerID int64) ([]*models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Chat
	for _, chat := range f.chats {
		between := (chat.SenderID == selfID && chat.ReceiverID == partnerID) ||
			(chat.SenderID == partnerID && chat.ReceiverID == selfID)
		if !between {
			continue
		}
		if chat.SenderID == partnerID {
			chat.IsRead = true
		}
		copied := *chat
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeChatRepo) UnreadCounts(ctx context.Context, selfID int64) (map[int64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[int64]int64)
	for _, chat := range f.chats {
		if chat.ReceiverID == selfID && !chat.IsRead {
			counts[chat.SenderID]++
		}
	}
	return counts, nil
}

func (f *fakeChatRepo) RecentPartners(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error) {
	return nil, nil
}

func (f *fakeChatRepo) AlumniDirectory(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error) {
	return nil, nil
}
