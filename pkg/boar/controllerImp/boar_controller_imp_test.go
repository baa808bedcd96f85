package controllerImp_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"herdbook/entities"
	"herdbook/pkg/boar/controllerImp"
	boarRepoImp "herdbook/pkg/boar/repositoryImp"
	boarSvcImp "herdbook/pkg/boar/serviceImp"
	farmRepoImp "herdbook/pkg/farm/repositoryImp"
	lineRepoImp "herdbook/pkg/line/repositoryImp"
	statusRepoImp "herdbook/pkg/status/repositoryImp"
	"herdbook/pkg/testdb"
	"herdbook/web"
)

func newServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := testdb.OpenSeeded(t)

	boars := boarRepoImp.New(db)
	farms := farmRepoImp.New(db)
	lines := lineRepoImp.New(db)
	statuses := statusRepoImp.New(db)
	svc := boarSvcImp.New(boars, lines, farms)
	ctrl := controllerImp.New(boars, farms, lines, statuses, svc, t.TempDir())

	e := echo.New()
	e.Renderer = web.NewRenderer()
	b := e.Group("/boars")
	b.GET("/", ctrl.Index)
	b.GET("/create", ctrl.ShowCreate)
	b.POST("/create", ctrl.Create)
	b.GET("/upload", ctrl.ShowUpload)
	b.POST("/upload", ctrl.Upload)
	b.POST("/delete-boar", ctrl.Delete)
	b.GET("/download", ctrl.ShowDownload)
	b.POST("/download", ctrl.Download)
	b.GET("/:id", ctrl.Show)
	b.POST("/:id", ctrl.AddStatus)
	return e, db
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestCreate_Success(t *testing.T) {
	e, db := newServer(t)

	w := postForm(e, "/boars/create", url.Values{
		"tattoo":   {"AB1234"},
		"name":     {"LL1234"},
		"birth_on": {"2023-04-01"},
		"farm_id":  {"1"},
		"line_id":  {"2"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/boars/", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&entities.Boar{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreate_DuplicateTattooRerenders(t *testing.T) {
	e, db := newServer(t)

	require.NoError(t, db.Create(&entities.Boar{Tattoo: "AB1234", Name: "LL1234"}).Error)

	w := postForm(e, "/boars/create", url.Values{
		"tattoo":  {"AB1234"},
		"name":    {"LL9999"},
		"farm_id": {"1"},
		"line_id": {"2"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "そのタトゥーは登録済みです")

	var count int64
	require.NoError(t, db.Model(&entities.Boar{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreate_ValidationErrors(t *testing.T) {
	e, db := newServer(t)

	w := postForm(e, "/boars/create", url.Values{
		"tattoo": {"WAY-TOO-LONG-TATTOO"},
		"name":   {""},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "10文字以内で入力してください")
	assert.Contains(t, w.Body.String(), "必須です")

	var count int64
	require.NoError(t, db.Model(&entities.Boar{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpload_RejectsDisallowedExtension(t *testing.T) {
	e, db := newServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "boars.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("tattoo,name\nAB1234,LL1234\n"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("farm_id", "1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/boars/upload", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/boars/upload", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&entities.Boar{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteBoar_JSON(t *testing.T) {
	e, db := newServer(t)

	boar := entities.Boar{Tattoo: "AB1234", Name: "LL1234"}
	require.NoError(t, db.Create(&boar).Error)

	payload, err := json.Marshal(map[string]int{"boarId": int(boar.ID)})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/boars/delete-boar", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())

	var count int64
	require.NoError(t, db.Model(&entities.Boar{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteBoar_MissingIDIsNoOp(t *testing.T) {
	e, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/boars/delete-boar",
		strings.NewReader(`{"boarId": 999}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestDownload_ReturnsWorkbook(t *testing.T) {
	e, db := newServer(t)

	require.NoError(t, db.Create(&entities.Boar{
		Tattoo: "AB1234", Name: "LL1234", FarmID: 1, LineID: 2,
	}).Error)

	w := postForm(e, "/boars/download", url.Values{
		"enrollment_status": {"all"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get(echo.HeaderContentType))
	assert.Contains(t, w.Header().Get(echo.HeaderContentDisposition), "_boar_list.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestDownload_MissingEnrollmentRedirects(t *testing.T) {
	e, _ := newServer(t)

	w := postForm(e, "/boars/download", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/boars/download", w.Header().Get("Location"))
}

func TestAddStatus(t *testing.T) {
	e, db := newServer(t)

	boar := entities.Boar{Tattoo: "AB1234", Name: "LL1234", FarmID: 1, LineID: 2}
	require.NoError(t, db.Create(&boar).Error)

	w := postForm(e, "/boars/1", url.Values{
		"start_on": {"2024-03-01"},
		"status":   {entities.StatusCaution},
		"reason":   {"体調不良"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var statuses []entities.Status
	require.NoError(t, db.Find(&statuses).Error)
	require.Len(t, statuses, 1)
	assert.Equal(t, entities.StatusCaution, statuses[0].Status)
}
