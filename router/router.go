package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authCtrl "herdbook/pkg/auth/controller"
	boarCtrl "herdbook/pkg/boar/controller"
	"herdbook/pkg/middleware"
	statusCtrl "herdbook/pkg/status/controller"
)

func New(
	e *echo.Echo,
	auth authCtrl.AuthController,
	boars boarCtrl.BoarController,
	statuses statusCtrl.StatusController,
	health interface{ Health(echo.Context) error },
	jwtSecret string,
) *echo.Echo {
	e.GET("/health", health.Health)

	e.GET("/login", auth.ShowLogin)
	e.POST("/login", auth.Login)
	e.GET("/logout", auth.Logout)
	e.GET("/sign-up", auth.ShowSignUp)
	e.POST("/sign-up", auth.SignUp)

	authed := e.Group("", middleware.RequireLogin(jwtSecret))
	authed.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/boars/")
	})
	authed.GET("/users/:id/edit", auth.ShowEditUser)
	authed.POST("/users/:id/edit", auth.EditUser)

	b := e.Group("/boars", middleware.RequireLogin(jwtSecret))
	b.GET("/", boars.Index)
	b.GET("/create", boars.ShowCreate)
	b.POST("/create", boars.Create)
	b.GET("/upload", boars.ShowUpload)
	b.POST("/upload", boars.Upload)
	b.POST("/delete-boar", boars.Delete)
	b.GET("/download", boars.ShowDownload)
	b.POST("/download", boars.Download)
	b.GET("/status/:id/edit", statuses.ShowEdit)
	b.POST("/status/:id/edit", statuses.Edit)
	b.GET("/status/:id/delete", statuses.Delete)
	b.GET("/:id", boars.Show)
	b.POST("/:id", boars.AddStatus)
	b.GET("/:id/edit", boars.ShowEdit)
	b.POST("/:id/edit", boars.Edit)

	return e
}
