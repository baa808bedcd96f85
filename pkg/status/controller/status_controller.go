package controller

import "github.com/labstack/echo/v4"

type StatusController interface {
	ShowEdit(c echo.Context) error
	Edit(c echo.Context) error
	Delete(c echo.Context) error
}
