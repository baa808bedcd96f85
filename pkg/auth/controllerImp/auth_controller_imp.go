package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"herdbook/entities"
	"herdbook/pkg/auth/controller"
	"herdbook/pkg/auth/session"
	"herdbook/pkg/flash"
	"herdbook/pkg/forms"
	stationRepo "herdbook/pkg/station/repository"
	userRepo "herdbook/pkg/user/repository"
)

type AuthCtrl struct {
	users    userRepo.UserRepository
	stations stationRepo.StationRepository
	secret   string
}

func New(
	users userRepo.UserRepository,
	stations stationRepo.StationRepository,
	secret string,
) controller.AuthController {
	return &AuthCtrl{users: users, stations: stations, secret: secret}
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type signUpForm struct {
	Email       string `form:"email" validate:"required,email"`
	Name        string `form:"name" validate:"required,max=10"`
	Password    string `form:"password" validate:"required"`
	Confirm     string `form:"confirm" validate:"required,eqfield=Password"`
	AiStationID uint   `form:"ai_station_id"`
}

func (h *AuthCtrl) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Flash": flash.Pop(c),
	})
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", echo.Map{
			"Errors": map[string]string{"Form": "入力内容を確認してください"},
		})
	}
	if errs := forms.Validate(form); errs != nil {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"Form":   form,
			"Errors": errs,
		})
	}

	user, err := h.users.FindByEmail(form.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
		flash.Add(c, "error", "ログイン情報を確認してください")
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"Form":  form,
			"Flash": flash.Pop(c),
		})
	}

	token, err := session.IssueToken(h.secret, user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session issue failed")
	}
	session.SetCookie(c, token)
	flash.Add(c, "success", "ログインしました")
	return c.Redirect(http.StatusSeeOther, "/boars/")
}

func (h *AuthCtrl) Logout(c echo.Context) error {
	session.ClearCookie(c)
	flash.Add(c, "success", "ログアウトしました")
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthCtrl) ShowSignUp(c echo.Context) error {
	stations, err := h.stations.List()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "sign_up.html", echo.Map{
		"Stations": stations,
		"Flash":    flash.Pop(c),
	})
}

func (h *AuthCtrl) SignUp(c echo.Context) error {
	stations, err := h.stations.List()
	if err != nil {
		return err
	}
	var form signUpForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "sign_up.html", echo.Map{
			"Stations": stations,
			"Errors":   map[string]string{"Form": "入力内容を確認してください"},
		})
	}
	if errs := forms.Validate(form); errs != nil {
		return c.Render(http.StatusOK, "sign_up.html", echo.Map{
			"Stations": stations,
			"Form":     form,
			"Errors":   errs,
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entities.User{
		Email:       form.Email,
		Name:        form.Name,
		Password:    string(hashed),
		AiStationID: form.AiStationID,
	}
	if err := h.users.Create(user); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			flash.Add(c, "error", "そのメールアドレスは登録済みです")
			return c.Render(http.StatusOK, "sign_up.html", echo.Map{
				"Stations": stations,
				"Form":     form,
				"Flash":    flash.Pop(c),
			})
		}
		return err
	}

	token, err := session.IssueToken(h.secret, user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session issue failed")
	}
	session.SetCookie(c, token)
	flash.Add(c, "success", "ユーザーを登録しました")
	return c.Redirect(http.StatusSeeOther, "/boars/")
}

func (h *AuthCtrl) ShowEditUser(c echo.Context) error {
	user, err := h.findUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	stations, err := h.stations.List()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "user_edit.html", echo.Map{
		"Stations": stations,
		"User":     user,
		"Flash":    flash.Pop(c),
	})
}

func (h *AuthCtrl) EditUser(c echo.Context) error {
	user, err := h.findUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	stations, err := h.stations.List()
	if err != nil {
		return err
	}
	var form signUpForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "user_edit.html", echo.Map{
			"Stations": stations,
			"User":     user,
			"Errors":   map[string]string{"Form": "入力内容を確認してください"},
		})
	}
	if errs := forms.Validate(form); errs != nil {
		return c.Render(http.StatusOK, "user_edit.html", echo.Map{
			"Stations": stations,
			"User":     user,
			"Errors":   errs,
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Email = form.Email
	user.Name = form.Name
	user.Password = string(hashed)
	user.AiStationID = form.AiStationID
	if err := h.users.Update(user); err != nil {
		return err
	}
	flash.Add(c, "success", "ユーザーを更新しました")
	return c.Redirect(http.StatusSeeOther, "/boars/")
}

func (h *AuthCtrl) findUser(c echo.Context) (*entities.User, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, err
	}
	return h.users.FindByID(uint(id))
}
