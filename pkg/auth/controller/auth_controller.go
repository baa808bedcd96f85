package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	ShowLogin(c echo.Context) error
	Login(c echo.Context) error
	Logout(c echo.Context) error
	ShowSignUp(c echo.Context) error
	SignUp(c echo.Context) error
	ShowEditUser(c echo.Context) error
	EditUser(c echo.Context) error
}
