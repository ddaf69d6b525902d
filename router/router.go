package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/controllers"
	"github.com/divinebraids/salon-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	// Global per-IP limiter (50 requests per second).
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Uploaded gallery images are served straight from disk.
	uploadDir := controllers.UploadDir()
	_ = os.MkdirAll(uploadDir, 0o755)
	r.Static("/uploads", uploadDir)

	userCtrl := controllers.NewUserController(db)
	bookingCtrl := controllers.NewBookingController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	transactionCtrl := controllers.NewTransactionController(db)
	galleryCtrl := controllers.NewGalleryController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	login := r.Group("/api/auth")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/login", userCtrl.Login)
	}

	// The contact form and the marketing gallery need no token.
	r.POST("/api/bookings", bookingCtrl.CreateBooking)
	r.GET("/api/gallery", galleryCtrl.GetGallery)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/api")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.POST("/auth/logout", userCtrl.Logout)
		admin.GET("/auth/me", userCtrl.Me)

		// BOOKINGS
		admin.GET("/bookings", bookingCtrl.GetAllBookings)
		admin.GET("/bookings/:id", bookingCtrl.GetBookingByID)
		admin.PUT("/bookings/:id", bookingCtrl.UpdateBooking)
		admin.DELETE("/bookings/:id", bookingCtrl.DeleteBooking)
		admin.GET("/bookings/:id/balance", bookingCtrl.GetBookingBalance)
		admin.POST("/bookings/:id/complete", bookingCtrl.CompleteBooking)

		// PAYMENTS
		admin.GET("/payments", paymentCtrl.GetAllPayments)
		admin.GET("/payments/booking/:booking_id", paymentCtrl.GetPaymentsByBooking)
		admin.POST("/payments", paymentCtrl.CreatePayment)
		admin.PUT("/payments/:id", paymentCtrl.UpdatePayment)
		admin.DELETE("/payments/:id", paymentCtrl.DeletePayment)

		// TRANSACTIONS
		admin.GET("/transactions", transactionCtrl.GetAllTransactions)
		admin.GET("/transactions/summary", transactionCtrl.GetSummary)
		admin.POST("/transactions", transactionCtrl.CreateTransaction)
		admin.PUT("/transactions/:id", transactionCtrl.UpdateTransaction)
		admin.DELETE("/transactions/:id", transactionCtrl.DeleteTransaction)

		// GALLERY
		admin.POST("/gallery", galleryCtrl.UploadImage)
		admin.PUT("/gallery/:id", galleryCtrl.UpdateImageOrder)
		admin.DELETE("/gallery/:id", galleryCtrl.DeleteImage)
	}

	serveFrontend(r)

	return r
}

// serveFrontend hands the built marketing site (dist/) to non-API routes
// so the SPA router works on refresh. Skipped when no build is present.
func serveFrontend(r *gin.Engine) {
	distPath := "dist"
	if _, err := os.Stat(distPath); os.IsNotExist(err) {
		return
	}

	r.Static("/assets", filepath.Join(distPath, "assets"))
	r.StaticFile("/", filepath.Join(distPath, "index.html"))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") || strings.HasPrefix(c.Request.URL.Path, "/uploads") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(filepath.Join(distPath, "index.html"))
	})
}
