package controller

import "github.com/labstack/echo/v4"

type BoarController interface {
	Index(c echo.Context) error
	ShowCreate(c echo.Context) error
	Create(c echo.Context) error
	ShowEdit(c echo.Context) error
	Edit(c echo.Context) error
	ShowUpload(c echo.Context) error
	Upload(c echo.Context) error
	Delete(c echo.Context) error
	ShowDownload(c echo.Context) error
	Download(c echo.Context) error
	Show(c echo.Context) error
	AddStatus(c echo.Context) error
}
