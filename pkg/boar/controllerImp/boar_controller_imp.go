package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"herdbook/entities"
	"herdbook/pkg/boar/controller"
	boarRepo "herdbook/pkg/boar/repository"
	"herdbook/pkg/boar/service"
	farmRepo "herdbook/pkg/farm/repository"
	"herdbook/pkg/flash"
	"herdbook/pkg/forms"
	lineRepo "herdbook/pkg/line/repository"
	statusRepo "herdbook/pkg/status/repository"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Upload allow-list. Everything else is rejected before parsing.
var allowedExtensions = []string{"xlsx", "xlsm", "xls"}

// Download form checkboxes as an explicit tagged list: form field name to
// the lookup value it selects.
var lineChecks = []struct {
	Field string
	Code  string
}{
	{"m_line", "MMMM"},
	{"n_line", "NNNN"},
	{"l_line", "LLLL"},
	{"z_line", "ZZZZ"},
}

var farmChecks = []struct {
	Field        string
	Abbreviation string
}{
	{"ggp1_farm", "GGP"},
	{"ggp2_farm", "GGP2"},
	{"east_farm", "東日本"},
}

type BoarCtrl struct {
	boars     boarRepo.BoarRepository
	farms     farmRepo.FarmRepository
	lines     lineRepo.LineRepository
	statuses  statusRepo.StatusRepository
	svc       service.BoarService
	uploadDir string
}

func New(
	boars boarRepo.BoarRepository,
	farms farmRepo.FarmRepository,
	lines lineRepo.LineRepository,
	statuses statusRepo.StatusRepository,
	svc service.BoarService,
	uploadDir string,
) controller.BoarController {
	return &BoarCtrl{
		boars:     boars,
		farms:     farms,
		lines:     lines,
		statuses:  statuses,
		svc:       svc,
		uploadDir: uploadDir,
	}
}

type boarForm struct {
	Tattoo    string `form:"tattoo" validate:"required,max=10"`
	Name      string `form:"name" validate:"required,max=10"`
	BirthOn   string `form:"birth_on"`
	CullingOn string `form:"culling_on"`
	FarmID    uint   `form:"farm_id"`
	LineID    uint   `form:"line_id"`
}

type statusForm struct {
	StartOn string `form:"start_on" validate:"required"`
	Status  string `form:"status" validate:"required"`
	Reason  string `form:"reason" validate:"max=10"`
}

func (h *BoarCtrl) Index(c echo.Context) error {
	boars, err := h.boars.List()
	if err != nil {
		return err
	}
	farmNames, lineAbbrs, err := h.lookupLabels()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "boar_index.html", echo.Map{
		"Boars":     boars,
		"FarmNames": farmNames,
		"LineAbbrs": lineAbbrs,
		"Flash":     flash.Pop(c),
	})
}

func (h *BoarCtrl) ShowCreate(c echo.Context) error {
	return h.renderBoarForm(c, "boar_create.html", echo.Map{
		"Flash": flash.Pop(c),
	})
}

func (h *BoarCtrl) Create(c echo.Context) error {
	var form boarForm
	if err := c.Bind(&form); err != nil {
		return h.renderBoarForm(c, "boar_create.html", echo.Map{
			"Errors": map[string]string{"Form": "入力内容を確認してください"},
		})
	}
	if errs := forms.Validate(form); errs != nil {
		return h.renderBoarForm(c, "boar_create.html", echo.Map{
			"Form":   form,
			"Errors": errs,
		})
	}

	boar := form.toEntity()
	if err := h.boars.Create(boar); err != nil {
		if errors.Is(err, boarRepo.ErrDuplicateTattoo) {
			flash.Add(c, "error", "そのタトゥーは登録済みです")
			return h.renderBoarForm(c, "boar_create.html", echo.Map{
				"Form":  form,
				"Flash": flash.Pop(c),
			})
		}
		return err
	}
	flash.Add(c, "success", "新規雄を登録しました")
	return c.Redirect(http.StatusSeeOther, "/boars/")
}

func (h *BoarCtrl) ShowEdit(c echo.Context) error {
	boar, err := h.findBoar(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "boar not found")
	}
	return h.renderBoarForm(c, "boar_edit.html", echo.Map{
		"Boar":  boar,
		"Flash": flash.Pop(c),
	})
}

func (h *BoarCtrl) Edit(c echo.Context) error {
	boar, err := h.findBoar(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "boar not found")
	}
	var form boarForm
	if err := c.Bind(&form); err != nil {
		return h.renderBoarForm(c, "boar_edit.html", echo.Map{
			"Boar":   boar,
			"Errors": map[string]string{"Form": "入力内容を確認してください"},
		})
	}
	if errs := forms.Validate(form); errs != nil {
		return h.renderBoarForm(c, "boar_edit.html", echo.Map{
			"Boar":   boar,
			"Form":   form,
			"Errors": errs,
		})
	}

	updated := form.toEntity()
	updated.ID = boar.ID
	if err := h.boars.Update(updated); err != nil {
		if errors.Is(err, boarRepo.ErrDuplicateTattoo) {
			flash.Add(c, "error", "そのタトゥーは登録済みです")
			return h.renderBoarForm(c, "boar_edit.html", echo.Map{
				"Boar":  boar,
				"Form":  form,
				"Flash": flash.Pop(c),
			})
		}
		return err
	}
	flash.Add(c, "success", "雄情報を更新しました")
	return c.Redirect(http.StatusSeeOther, "/boars/")
}

func (h *BoarCtrl) ShowUpload(c echo.Context) error {
	farms, err := h.farms.List()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "boar_upload.html", echo.Map{
		"Farms": farms,
		"Flash": flash.Pop(c),
	})
}

func (h *BoarCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		flash.Add(c, "error", "必須です")
		return c.Redirect(http.StatusSeeOther, "/boars/upload")
	}
	if !allowedFile(fh.Filename) {
		flash.Add(c, "error", fmt.Sprintf(
			"アップロードできるファイル形式は%vです", allowedExtensions))
		return c.Redirect(http.StatusSeeOther, "/boars/upload")
	}
	farmID, err := strconv.Atoi(c.FormValue("farm_id"))
	if err != nil {
		flash.Add(c, "error", "農場を選択してください")
		return c.Redirect(http.StatusSeeOther, "/boars/upload")
	}

	path, err := h.stageUpload(fh)
	if err != nil {
		return err
	}
	defer os.Remove(path)

	result, err := h.svc.Import(path, fh.Filename, uint(farmID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadLayout):
			flash.Add(c, "error", "ファイルのフォーマットが認識できませんでした")
		case errors.Is(err, service.ErrUnknownLine):
			flash.Add(c, "error", "不明な系統コードが含まれています")
		default:
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/boars/upload")
	}

	category := "success"
	if result.Inserted == 0 {
		category = "error"
	}
	flash.Add(c, category, result.Message)
	return c.Redirect(http.StatusSeeOther, "/boars/")
}

type deleteRequest struct {
	BoarID int `json:"boarId"`
}

func (h *BoarCtrl) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if _, err := h.boars.FindByID(uint(req.BoarID)); err == nil {
		if err := h.boars.Delete(uint(req.BoarID)); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, echo.Map{})
}

func (h *BoarCtrl) ShowDownload(c echo.Context) error {
	return c.Render(http.StatusOK, "boar_download.html", echo.Map{
		"LineChecks": lineChecks,
		"FarmChecks": farmChecks,
		"Flash":      flash.Pop(c),
	})
}

func (h *BoarCtrl) Download(c echo.Context) error {
	enrollment := c.FormValue("enrollment_status")
	switch enrollment {
	case boarRepo.EnrollmentAll, boarRepo.EnrollmentAlive, boarRepo.EnrollmentCulled:
	default:
		flash.Add(c, "error", "在籍状況を選択してください")
		return c.Redirect(http.StatusSeeOther, "/boars/download")
	}

	lineIDs, err := h.checkedLines(c)
	if err != nil {
		return err
	}
	farmIDs, err := h.checkedFarms(c)
	if err != nil {
		return err
	}

	boars, err := h.boars.Filter(enrollment, lineIDs, farmIDs)
	if err != nil {
		return err
	}
	buf, filename, err := h.svc.Export(boars)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (h *BoarCtrl) Show(c echo.Context) error {
	boar, err := h.findBoar(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "boar not found")
	}
	statuses, err := h.statuses.RecentForBoar(boar.ID, 5)
	if err != nil {
		return err
	}
	farmNames, lineAbbrs, err := h.lookupLabels()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "boar_show.html", echo.Map{
		"Boar":      boar,
		"Statuses":  statuses,
		"FarmNames": farmNames,
		"LineAbbrs": lineAbbrs,
		"Flash":     flash.Pop(c),
	})
}

func (h *BoarCtrl) AddStatus(c echo.Context) error {
	boar, err := h.findBoar(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "boar not found")
	}
	var form statusForm
	if err := c.Bind(&form); err != nil {
		flash.Add(c, "error", "入力内容を確認してください")
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/boars/%d", boar.ID))
	}
	if errs := forms.Validate(form); errs != nil {
		statuses, err := h.statuses.RecentForBoar(boar.ID, 5)
		if err != nil {
			return err
		}
		farmNames, lineAbbrs, err := h.lookupLabels()
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "boar_show.html", echo.Map{
			"Boar":      boar,
			"Statuses":  statuses,
			"FarmNames": farmNames,
			"LineAbbrs": lineAbbrs,
			"Form":      form,
			"Errors":    errs,
		})
	}

	startOn, err := time.Parse("2006-01-02", form.StartOn)
	if err != nil {
		flash.Add(c, "error", "日付の形式が正しくありません")
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/boars/%d", boar.ID))
	}
	status := &entities.Status{
		BoarID:  boar.ID,
		Status:  form.Status,
		Reason:  form.Reason,
		StartOn: startOn,
	}
	if err := h.statuses.Create(status); err != nil {
		return err
	}
	flash.Add(c, "success", "状態を登録しました")
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/boars/%d", boar.ID))
}

func (f *boarForm) toEntity() *entities.Boar {
	return &entities.Boar{
		Tattoo:    f.Tattoo,
		Name:      f.Name,
		BirthOn:   parseFormDate(f.BirthOn),
		CullingOn: parseFormDate(f.CullingOn),
		FarmID:    f.FarmID,
		LineID:    f.LineID,
	}
}

func (h *BoarCtrl) findBoar(c echo.Context) (*entities.Boar, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, err
	}
	return h.boars.FindByID(uint(id))
}

func (h *BoarCtrl) renderBoarForm(c echo.Context, name string, data echo.Map) error {
	farms, err := h.farms.List()
	if err != nil {
		return err
	}
	lines, err := h.lines.List()
	if err != nil {
		return err
	}
	data["Farms"] = farms
	data["Lines"] = lines
	return c.Render(http.StatusOK, name, data)
}

func (h *BoarCtrl) lookupLabels() (map[uint]string, map[uint]string, error) {
	farms, err := h.farms.List()
	if err != nil {
		return nil, nil, err
	}
	lines, err := h.lines.List()
	if err != nil {
		return nil, nil, err
	}
	farmNames := make(map[uint]string, len(farms))
	for _, f := range farms {
		farmNames[f.ID] = f.Name
	}
	lineAbbrs := make(map[uint]string, len(lines))
	for _, l := range lines {
		lineAbbrs[l.ID] = l.Abbreviation
	}
	return farmNames, lineAbbrs, nil
}

func (h *BoarCtrl) checkedLines(c echo.Context) ([]uint, error) {
	var ids []uint
	for _, check := range lineChecks {
		if c.FormValue(check.Field) == "" {
			continue
		}
		line, err := h.lines.FindByCode(check.Code)
		if err != nil {
			if errors.Is(err, lineRepo.ErrNotFound) {
				continue
			}
			return nil, err
		}
		ids = append(ids, line.ID)
	}
	return ids, nil
}

func (h *BoarCtrl) checkedFarms(c echo.Context) ([]uint, error) {
	checked := map[string]bool{}
	for _, check := range farmChecks {
		if c.FormValue(check.Field) != "" {
			checked[check.Abbreviation] = true
		}
	}
	if len(checked) == 0 {
		return nil, nil
	}
	farms, err := h.farms.List()
	if err != nil {
		return nil, err
	}
	var ids []uint
	for _, f := range farms {
		if checked[f.Abbreviation] {
			ids = append(ids, f.ID)
		}
	}
	return ids, nil
}

// stageUpload copies the uploaded file into the upload dir under a
// uuid-prefixed name so concurrent uploads of the same filename cannot
// clobber each other. The caller removes the file when done.
func (h *BoarCtrl) stageUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(h.uploadDir,
		fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(fh.Filename)))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func allowedFile(filename string) bool {
	if !strings.Contains(filename, ".") {
		return false
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func parseFormDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
