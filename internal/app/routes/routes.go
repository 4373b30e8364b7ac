package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/controllers"
	"github.com/elevateconnect/backend/internal/middleware"
)

// SetupRouter configures all application routes. Identify runs on every
// request and attaches the caller when a valid token is present; the
// Require* gates enforce the per-group policy.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	driveController *controllers.DriveController,
	tpoController *controllers.TPOController,
	applicationController *controllers.ApplicationController,
	chatController *controllers.ChatController,
	questionController *controllers.QuestionController,
	notificationController *controllers.NotificationController,
	analyticsController *controllers.AnalyticsController,
	fileController *controllers.FileController,
	authMiddleware *middleware.AuthMiddleware,
	uploadsDir string,
) {
	router.Use(authMiddleware.Identify())

	// Uploaded chat media is served statically
	router.Static("/uploads", uploadsDir)

	api := router.Group("/api")

	// --- Anonymous routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/signin", authController.Signin)
		auth.GET("/stats", authController.PublicStats)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.PUT("/auth/profile", authController.UpdateProfile)

		drives := authenticated.Group("/drives")
		{
			drives.GET("", driveController.List)
			drives.GET("/active", driveController.ListActive)
			drives.GET("/all", driveController.ListManaged)
			drives.GET("/:id", driveController.Get)
			drives.POST("", driveController.Create)
			drives.PUT("/:id", driveController.Update)
			drives.DELETE("/:id", driveController.Delete)
		}

		applications := authenticated.Group("/applications")
		{
			applications.GET("", applicationController.ListAll)
			applications.POST("/apply", applicationController.Apply)
			applications.GET("/my", applicationController.ListMine)
			applications.GET("/drive/:driveId", applicationController.ListByDrive)
			applications.PUT("/:id/status", applicationController.UpdateStatus)
		}

		chat := authenticated.Group("/chat")
		{
			chat.POST("/send", chatController.Send)
			chat.GET("/conversation/:partnerId", chatController.Conversation)
			chat.GET("/unread", chatController.Unread)
			chat.GET("/partners", chatController.Partners)
			chat.GET("/alumni", chatController.AlumniDirectory)
			chat.POST("/upload", chatController.Upload)
		}

		questions := authenticated.Group("/questions")
		{
			questions.GET("", questionController.List)
			questions.GET("/my", questionController.ListMine)
			questions.GET("/companies", questionController.Companies)
			questions.POST("", questionController.Create)
			questions.PUT("/:id/helpful", questionController.ToggleHelpful)
			questions.DELETE("/:id", questionController.Delete)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.GET("/unread", notificationController.UnreadCount)
			notifications.PUT("/:id/read", notificationController.MarkRead)
			notifications.PUT("/read-all", notificationController.MarkAllRead)
		}

		authenticated.GET("/analytics/student", analyticsController.StudentStats)
		authenticated.POST("/files/upload/resume", fileController.UploadResume)
	}

	// --- Privileged routes ---
	tpo := api.Group("/tpo")
	tpo.Use(authMiddleware.RequireAuth(), authMiddleware.RequireTPO())
	{
		tpo.GET("/drives/pending", tpoController.ListPendingDrives)
		tpo.PUT("/drives/:id/approve", tpoController.ApproveDrive)
		tpo.PUT("/drives/:id/reject", tpoController.RejectDrive)

		tpo.GET("/students", tpoController.ListStudents)
		tpo.GET("/students/:id", tpoController.StudentDetails)
		tpo.PUT("/students/:id/ban", tpoController.BanStudent)
		tpo.PUT("/students/:id/activate", tpoController.ActivateStudent)

		tpo.GET("/stats", tpoController.Stats)

		tpo.POST("/courses", tpoController.CreateCourse)
		tpo.GET("/courses", tpoController.ListCourses)
		tpo.PUT("/courses/:id", tpoController.UpdateCourse)
		tpo.DELETE("/courses/:id", tpoController.DeleteCourse)
		tpo.POST("/courses/:id/assign/:userId", tpoController.AssignCourse)
		tpo.DELETE("/courses/:id/unassign/:userId", tpoController.UnassignCourse)
	}
}
