package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"herdbook/entities"
	"herdbook/pkg/flash"
	"herdbook/pkg/forms"
	"herdbook/pkg/status/controller"
	statusRepo "herdbook/pkg/status/repository"
)

type StatusCtrl struct {
	statuses statusRepo.StatusRepository
}

func New(statuses statusRepo.StatusRepository) controller.StatusController {
	return &StatusCtrl{statuses: statuses}
}

type statusForm struct {
	StartOn string `form:"start_on" validate:"required"`
	Status  string `form:"status" validate:"required"`
	Reason  string `form:"reason" validate:"max=10"`
}

func (h *StatusCtrl) ShowEdit(c echo.Context) error {
	status, err := h.findStatus(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "status not found")
	}
	return c.Render(http.StatusOK, "status_edit.html", echo.Map{
		"Status": status,
		"Kinds":  statusKinds(),
		"Flash":  flash.Pop(c),
	})
}

func (h *StatusCtrl) Edit(c echo.Context) error {
	status, err := h.findStatus(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "status not found")
	}
	var form statusForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "status_edit.html", echo.Map{
			"Status": status,
			"Kinds":  statusKinds(),
			"Errors": map[string]string{"Form": "入力内容を確認してください"},
		})
	}
	if errs := forms.Validate(form); errs != nil {
		return c.Render(http.StatusOK, "status_edit.html", echo.Map{
			"Status": status,
			"Kinds":  statusKinds(),
			"Form":   form,
			"Errors": errs,
		})
	}

	startOn, err := time.Parse("2006-01-02", form.StartOn)
	if err != nil {
		return c.Render(http.StatusOK, "status_edit.html", echo.Map{
			"Status": status,
			"Kinds":  statusKinds(),
			"Errors": map[string]string{"StartOn": "日付の形式が正しくありません"},
		})
	}
	status.StartOn = startOn
	status.Status = form.Status
	status.Reason = form.Reason
	if err := h.statuses.Update(status); err != nil {
		return err
	}
	flash.Add(c, "success", "状態を更新しました")
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/boars/%d", status.BoarID))
}

func (h *StatusCtrl) Delete(c echo.Context) error {
	status, err := h.findStatus(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "status not found")
	}
	if err := h.statuses.Delete(status.ID); err != nil {
		return err
	}
	flash.Add(c, "success", "状態を削除しました")
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/boars/%d", status.BoarID))
}

func (h *StatusCtrl) findStatus(c echo.Context) (*entities.Status, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, err
	}
	return h.statuses.FindByID(uint(id))
}

func statusKinds() []string {
	return []string{
		entities.StatusProducible,
		entities.StatusNotProducible,
		entities.StatusCaution,
	}
}
