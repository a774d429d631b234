package main

import (
	"log"
	"os"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/routes/attendance"
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/Mutiur03/School-sub002/app/routes/dashboard"
	"github.com/Mutiur03/School-sub002/app/routes/events"
	"github.com/Mutiur03/School-sub002/app/routes/exams"
	"github.com/Mutiur03/School-sub002/app/routes/holidays"
	"github.com/Mutiur03/School-sub002/app/routes/marks"
	"github.com/Mutiur03/School-sub002/app/routes/notices"
	"github.com/Mutiur03/School-sub002/app/routes/settings"
	"github.com/Mutiur03/School-sub002/app/routes/sms"
	"github.com/Mutiur03/School-sub002/app/routes/staff"
	"github.com/Mutiur03/School-sub002/app/routes/students"
	"github.com/Mutiur03/School-sub002/app/routes/subjects"
	"github.com/Mutiur03/School-sub002/app/routes/teachers"
	"github.com/Mutiur03/School-sub002/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func getAllowedOrigins() string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return origins
	}
	return "http://localhost:3000"
}

func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	services.StartScheduler(db)

	app := fiber.New(fiber.Config{
		AppName:      "School-sub002",
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     getAllowedOrigins(),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	students.SetupStudentRoutes(app)
	teachers.SetupTeacherRoutes(app)
	staff.SetupStaffRoutes(app)
	subjects.SetupSubjectRoutes(app)
	exams.SetupExamRoutes(app, db)
	marks.SetupMarksRoutes(app, db)
	attendance.SetupAttendanceRoutes(app)
	holidays.SetupHolidayRoutes(app)
	notices.SetupNoticeRoutes(app)
	events.SetupEventRoutes(app)
	sms.SetupSMSRoutes(app)
	settings.SetupSettingsRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	log.Printf("Server starting on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
