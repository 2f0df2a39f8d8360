package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authService "schoolku_backend/internals/features/users/auth/service"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/middlewares/tenant"

	assessmentRoute "schoolku_backend/internals/features/academics/assessments/route"
	attendanceRoute "schoolku_backend/internals/features/academics/attendance/route"
	classRoute "schoolku_backend/internals/features/academics/classes/route"
	enrollmentRoute "schoolku_backend/internals/features/academics/enrollments/route"
	examRoute "schoolku_backend/internals/features/academics/exams/route"
	materialRoute "schoolku_backend/internals/features/academics/materials/route"
	resultRoute "schoolku_backend/internals/features/academics/results/route"
	studentRoute "schoolku_backend/internals/features/academics/students/route"
	subjectRoute "schoolku_backend/internals/features/academics/subjects/route"
	teacherRoute "schoolku_backend/internals/features/academics/teachers/route"
	timetableRoute "schoolku_backend/internals/features/academics/timetable/route"
	announcementRoute "schoolku_backend/internals/features/communications/announcements/route"
	calendarRoute "schoolku_backend/internals/features/communications/calendar/route"
	notificationRoute "schoolku_backend/internals/features/communications/notifications/route"
	disciplineRoute "schoolku_backend/internals/features/discipline/route"
	feeRoute "schoolku_backend/internals/features/finance/fees/route"
	libraryRoute "schoolku_backend/internals/features/library/route"
	settingRoute "schoolku_backend/internals/features/platform/route"
	resourceRoute "schoolku_backend/internals/features/resources/route"
	schoolRoute "schoolku_backend/internals/features/schools/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
)

// SetupRoutes wires the full API surface.
//
// Group layout:
//
//	/api/auth — register/login/logout (public + rate limited)
//	/api/p    — public, optional identity, tenant resolved when possible
//	/api/u    — any authenticated user of the school
//	/api/a    — school staff, tenant context enforced
//	/api/s    — platform super-admins, no tenant guard
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	auth := authService.NewAuthService(db, configs.JWTSecret)

	// Identity first (optional so public routes pass), then the tenant
	// resolver; the resolver consults the identity's school claim.
	api := app.Group("/api",
		authMiddleware.OptionalAuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    auth.IsTokenBlacklisted,
			AllowCookieFallback: true,
		}),
		tenant.SchoolContext(tenant.SchoolContextOpts{DB: db}),
	)

	authRoute.AuthRoutes(api.Group("/auth"), db)

	// Public surface: tenant discovery and platform branding before login.
	public := api.Group("/p")
	schoolRoute.SchoolPublicRoutes(public, db)
	settingRoute.SettingPublicRoutes(public, db)

	requireJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    auth.IsTokenBlacklisted,
		AllowCookieFallback: true,
	})

	// Self-service surface: any authenticated member of the school.
	user := api.Group("/u", requireJWT, tenant.RequireSchoolContext())
	resultRoute.ResultUserRoutes(user, db)
	feeRoute.FeeUserRoutes(user, db)
	announcementRoute.AnnouncementUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)
	calendarRoute.CalendarUserRoutes(user, db)

	// Staff surface: tenant-scoped administration.
	admin := api.Group("/a", requireJWT, tenant.RequireSchoolContext(),
		tenant.RequireRoles(constants.StaffRoles...))
	userRoute.UserAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db)
	resultRoute.ResultAdminRoutes(admin, db)
	assessmentRoute.AssessmentAdminRoutes(admin, db)
	timetableRoute.TimetableAdminRoutes(admin, db)
	materialRoute.MaterialAdminRoutes(admin, db)
	calendarRoute.CalendarAdminRoutes(admin, db)
	resourceRoute.ResourceRequestAdminRoutes(admin, db)
	feeRoute.FeeAdminRoutes(admin, db)
	libraryRoute.LibraryAdminRoutes(admin, db)
	disciplineRoute.DisciplineAdminRoutes(admin, db)
	announcementRoute.AnnouncementAdminRoutes(admin, db)
	notificationRoute.NotificationAdminRoutes(admin, db)

	// Platform surface: registry management across tenants. No tenant guard —
	// super-admins operate without a resolved school context.
	super := api.Group("/s", requireJWT, tenant.RequireRoles(constants.RoleSuperAdmin))
	schoolRoute.SchoolSuperAdminRoutes(super, db)
	settingRoute.SettingSuperAdminRoutes(super, db)
}
