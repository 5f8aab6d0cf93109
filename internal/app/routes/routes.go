package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/controllers"
)

// Controllers groups every controller the router mounts
type Controllers struct {
	Enrollment *controllers.EnrollmentController
	Teacher    *controllers.TeacherController
	Student    *controllers.StudentController
	Document   *controllers.DocumentController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes.
// Screen routes expect the session middleware to be installed on router.
func SetupRouter(router *gin.Engine, c Controllers) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/students")
	})

	router.GET("/ping", c.Health.Ping)
	router.GET("/health", c.Health.Health)

	// Enrollment form
	router.GET("/enroll", c.Enrollment.Show)
	router.POST("/enroll", c.Enrollment.Submit)

	// Teacher table and editor
	teachers := router.Group("/teachers")
	{
		teachers.GET("", c.Teacher.List)
		teachers.GET("/new", c.Teacher.New)
		teachers.GET("/:id/edit", c.Teacher.Edit)
		teachers.POST("/save", c.Teacher.Save)
		teachers.POST("/close", c.Teacher.Close)
	}

	// Student table and details
	students := router.Group("/students")
	{
		students.GET("", c.Student.List)
		students.GET("/:id", c.Student.Show)
		students.POST("/close", c.Student.Close)
	}

	// Document manager
	documents := router.Group("/documents")
	{
		documents.GET("", c.Document.List)
		documents.POST("/:studentId/files", c.Document.Upload)
	}

	// JSON endpoints used by the pages
	v1 := router.Group("/api/v1")
	{
		v1.POST("/enrollment/dob", c.Enrollment.CheckDOB)
		v1.GET("/enrollment/teachers", c.Enrollment.TeacherOptions)
	}
}
