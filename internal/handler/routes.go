package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-records-api/internal/middleware"
)

// Handlers groups every HTTP handler mounted under the API prefix.
type Handlers struct {
	Auth       *AuthHandler
	Users      *UserHandler
	Students   *StudentHandler
	Employees  *EmployeeHandler
	Classrooms *ClassroomHandler
	Attendance *AttendanceHandler
	Payments   *PaymentHandler
	Exams      *ExamHandler
	Results    *ResultHandler
	Schedules  *ScheduleHandler
	Analytics  *AnalyticsHandler
}

// Guards holds the access middleware applied to protected routes. Nil guards are open.
type Guards struct {
	Authenticated gin.HandlerFunc
	Admin         gin.HandlerFunc
}

func (g Guards) authenticated() gin.HandlerFunc {
	if g.Authenticated == nil {
		return middleware.Passthrough()
	}
	return g.Authenticated
}

func (g Guards) admin() gin.HandlerFunc {
	if g.Admin == nil {
		return middleware.Passthrough()
	}
	return g.Admin
}

// crud is the handler shape shared by every record collection.
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

// Register mounts the API routes on group.
func Register(api *gin.RouterGroup, h Handlers, guards Guards) {
	if h.Auth != nil {
		api.POST("/auth/login", h.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(guards.authenticated())

	admin := guards.admin()
	mount := func(path string, handler crud) *gin.RouterGroup {
		group := protected.Group(path)
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.PATCH("/:id", handler.Patch)
		group.DELETE("/:id", admin, handler.Delete)
		return group
	}

	students := mount("/students", h.Students)
	students.GET("/:id/payments", h.Payments.ListForStudent)
	students.GET("/:id/attendance", h.Attendance.ListForStudent)
	students.GET("/:id/results", h.Results.ListForStudent)

	employees := mount("/employees", h.Employees)
	employees.GET("/:id/schedules", h.Schedules.ListForTeacher)

	mount("/classrooms", h.Classrooms)
	mount("/attendance", h.Attendance)
	mount("/payments", h.Payments)
	exams := mount("/exams", h.Exams)
	exams.GET("/:id/results", h.Results.ListForExam)
	mount("/results", h.Results)
	mount("/schedules", h.Schedules)

	if h.Users != nil {
		users := protected.Group("/users")
		users.Use(admin)
		users.GET("", h.Users.List)
		users.POST("", h.Users.Create)
		users.GET("/:id", h.Users.Get)
		users.PATCH("/:id", h.Users.Patch)
		users.DELETE("/:id", h.Users.Delete)
	}

	protected.GET("/stats", h.Analytics.Stats)
	analytics := protected.Group("/analytics")
	analytics.GET("", h.Analytics.Report)
	analytics.GET("/export", h.Analytics.Export)
	analytics.GET("/system", h.Analytics.System)
}
