package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignUp(c *ginext.Context)
	SignIn(c *ginext.Context)
	SignOut(c *ginext.Context)
	UpdateSalary(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	GetBookingStatus(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	GetCarpool(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Accounts
		api.POST("/accounts/signup", h.SignUp)
		api.POST("/accounts/signin", h.SignIn)

		protected := api.Group("")
		protected.Use(auth)
		{
			protected.POST("/accounts/signout", h.SignOut)
			protected.PATCH("/accounts/salary", h.UpdateSalary)
			protected.GET("/accounts/me/bookings", h.ListMyBookings)

			// Bookings
			protected.POST("/bookings", h.SubmitBooking)
			protected.GET("/bookings/:id", h.GetBookingStatus)
			protected.DELETE("/bookings/:id", h.CancelBooking)

			// Carpools
			protected.GET("/carpools/:id", h.GetCarpool)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
