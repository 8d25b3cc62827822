package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	authRoute "akademiku_backend/internals/features/auth/route"
	calendarRoute "akademiku_backend/internals/features/calendar/route"
	certificateRoute "akademiku_backend/internals/features/certificates/route"
	dashboardRoute "akademiku_backend/internals/features/dashboard/route"
	homeworkRoute "akademiku_backend/internals/features/homework/route"
	identityRoute "akademiku_backend/internals/features/identity/route"
	paymentRoute "akademiku_backend/internals/features/payments/route"
	quizRoute "akademiku_backend/internals/features/quizzes/route"
	reportRoute "akademiku_backend/internals/features/reports/route"
	sessionRoute "akademiku_backend/internals/features/sessions/route"
	subscriptionRoute "akademiku_backend/internals/features/subscriptions/route"
	authparent "akademiku_backend/internals/middlewares/auth_parent"
)

// SetupRoutes wires the public auth surface and the JWT-guarded parent API.
func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	api := app.Group("/api/v1")

	authRoute.AuthRoutes(api, db)

	parent := api.Group("/parent", authparent.AuthJWT(authparent.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	dashboardRoute.DashboardParentRoutes(parent, db, rdb)
	identityRoute.ChildrenParentRoutes(parent, db)
	sessionRoute.SessionParentRoutes(parent, db, rdb)
	subscriptionRoute.SubscriptionParentRoutes(parent, db)
	homeworkRoute.HomeworkParentRoutes(parent, db)
	reportRoute.ReportParentRoutes(parent, db, rdb)
	calendarRoute.CalendarParentRoutes(parent, db, rdb)
	certificateRoute.CertificateParentRoutes(parent, db)
	paymentRoute.PaymentParentRoutes(parent, db)
	quizRoute.QuizParentRoutes(parent, db)
}
