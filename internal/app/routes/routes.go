package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/controllers"
	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	studentController *controllers.StudentController,
	gradeController *controllers.GradeController,
	notificationController *controllers.NotificationController,
	userController *controllers.UserController,
	reportController *controllers.ReportController,
	statisticsController *controllers.StatisticsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// --- Public read routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollment)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/department/:deptId", studentController.GetStudentsByDepartment)
		students.GET("/:id", studentController.GetStudent)
	}

	grades := v1.Group("/grades")
	{
		grades.GET("", gradeController.ListGrades)
		grades.GET("/student/:studentId", gradeController.GetGradesByStudent)
		grades.GET("/:id", gradeController.GetGrade)
	}

	notifications := v1.Group("/notifications")
	{
		notifications.GET("", notificationController.ListNotifications)
		notifications.GET("/unread-count", notificationController.UnreadCount)
		notifications.GET("/:id", notificationController.GetNotification)
	}

	users := v1.Group("/user")
	{
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUser)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/gpa/:studentId/:semester", reportController.StudentGPA)
		reports.GET("/credits/:studentId", reportController.StudentCredits)
		reports.GET("/department/:deptId/:semester", reportController.DepartmentReport)
		reports.GET("/instructor/:instructorId", reportController.InstructorStatistics)
		reports.GET("/warnings/:semester", reportController.WarningList)
	}

	stats := v1.Group("/stats")
	{
		stats.GET("/total-users", statisticsController.TotalUsers)
		stats.GET("/total-classes", statisticsController.TotalClasses)
		stats.GET("/total-courses", statisticsController.TotalCourses)
		stats.GET("/total-assignments", statisticsController.TotalAssignments)
		stats.GET("/overview", statisticsController.Overview)
	}

	// --- Authenticated mutation routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		coursesProtected := authenticated.Group("/courses")
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.PATCH("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
		}

		enrollmentsProtected := authenticated.Group("/enrollments")
		{
			enrollmentsProtected.POST("", enrollmentController.CreateEnrollment)
			enrollmentsProtected.PUT("/:id", enrollmentController.UpdateEnrollment)
			enrollmentsProtected.DELETE("/:id", enrollmentController.DeleteEnrollment)
		}

		studentsProtected := authenticated.Group("/students")
		{
			studentsProtected.POST("", studentController.CreateStudent)
			studentsProtected.POST("/procedure", studentController.CreateStudentTx)
			studentsProtected.PATCH("/:id", studentController.UpdateStudent)
			studentsProtected.DELETE("/:id", studentController.DeleteStudent)
		}

		gradesProtected := authenticated.Group("/grades")
		{
			gradesProtected.POST("", gradeController.CreateGrade)
			gradesProtected.PATCH("/:id", gradeController.UpdateGrade)
			gradesProtected.DELETE("/:id", gradeController.DeleteGrade)
		}

		notificationsProtected := authenticated.Group("/notifications")
		{
			notificationsProtected.POST("", notificationController.CreateNotification)
			notificationsProtected.PATCH("/:id/seen", notificationController.MarkSeen)
			notificationsProtected.DELETE("/:id", notificationController.DeleteNotification)
		}

		usersProtected := authenticated.Group("/user")
		{
			usersProtected.POST("", userController.CreateUser)
			usersProtected.PATCH("/:id", userController.UpdateUser)

			usersAdmin := usersProtected.Group("")
			usersAdmin.Use(authMiddleware.RequireRole(string(models.RoleAdmin)))
			{
				usersAdmin.DELETE("/:id", userController.DeleteUser)
			}
		}

		authenticated.GET("/reports/notifications/deadlines/send", reportController.DispatchDeadlineReminders)
	}
}
