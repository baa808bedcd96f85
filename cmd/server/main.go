package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"herdbook/config"
	"herdbook/database"
	"herdbook/router"
	"herdbook/web"

	authCtrlImp "herdbook/pkg/auth/controllerImp"
	boarCtrlImp "herdbook/pkg/boar/controllerImp"
	boarRepoImp "herdbook/pkg/boar/repositoryImp"
	boarSvcImp "herdbook/pkg/boar/serviceImp"
	farmRepoImp "herdbook/pkg/farm/repositoryImp"
	healthCtrlImp "herdbook/pkg/health/controllerImp"
	lineRepoImp "herdbook/pkg/line/repositoryImp"
	stationRepoImp "herdbook/pkg/station/repositoryImp"
	statusCtrlImp "herdbook/pkg/status/controllerImp"
	statusRepoImp "herdbook/pkg/status/repositoryImp"
	userRepoImp "herdbook/pkg/user/repositoryImp"
)

func main() {
	cfg := config.Load()

	db := database.Open(cfg.DatabaseURL)

	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Renderer = web.NewRenderer()

	userRepo := userRepoImp.New(db)
	stationRepo := stationRepoImp.New(db)
	farmRepo := farmRepoImp.New(db)
	lineRepo := lineRepoImp.New(db)
	boarRepo := boarRepoImp.New(db)
	statusRepo := statusRepoImp.New(db)

	boarSvc := boarSvcImp.New(boarRepo, lineRepo, farmRepo)

	auth := authCtrlImp.New(userRepo, stationRepo, cfg.JWTSecret)
	boars := boarCtrlImp.New(boarRepo, farmRepo, lineRepo, statusRepo, boarSvc, cfg.UploadDir)
	statuses := statusCtrlImp.New(statusRepo)
	health := healthCtrlImp.NewHealthCtrl(db)

	r := router.New(e, auth, boars, statuses, health, cfg.JWTSecret)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
