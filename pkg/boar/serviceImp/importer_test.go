package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"herdbook/entities"
	boarRepoImp "herdbook/pkg/boar/repositoryImp"
	"herdbook/pkg/boar/service"
	farmRepoImp "herdbook/pkg/farm/repositoryImp"
	lineRepoImp "herdbook/pkg/line/repositoryImp"
	"herdbook/pkg/testdb"
)

func newService(t *testing.T) (service.BoarService, *importFixture) {
	t.Helper()
	db := testdb.OpenSeeded(t)
	boars := boarRepoImp.New(db)
	svc := New(boars, lineRepoImp.New(db), farmRepoImp.New(db))
	var farm entities.Farm
	require.NoError(t, db.Order("id").First(&farm).Error)
	return svc, &importFixture{db: db, farmID: farm.ID}
}

type importFixture struct {
	db     *gorm.DB
	farmID uint
}

// writeDirect builds a workbook in the plain layout: header on row 1, first
// cell タトゥー.
func writeDirect(t *testing.T, rows [][]string) string {
	t.Helper()
	header := []string{"タトゥー", "雄ID", "系統", "生年月日", "淘汰日"}
	return writeWorkbook(t, append([][]string{header}, rows...))
}

// writeFiltered builds a workbook in the breeding-web export layout: filter
// summary on row 1, blank row, English header on row 3.
func writeFiltered(t *testing.T, rows [][]string) string {
	t.Helper()
	sheet := [][]string{
		{"Applied filters: herd=GGP"},
		{},
		{"Tattoo Number", "Name", "Line", "Date birth", "Date Mortality"},
	}
	return writeWorkbook(t, append(sheet, rows...))
}

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	path := filepath.Join(t.TempDir(), "upload.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImport_DirectLayout(t *testing.T) {
	svc, fx := newService(t)

	path := writeDirect(t, [][]string{
		{"AB1234", "", "LLLL", "2023-04-01", ""},
		{"UR5678EN", "", "MMMM", "2023-05-02", ""},
		{"CD9012", "", "NNNN", "2023-06-03", ""},
	})
	result, err := svc.Import(path, "upload.xlsx", fx.farmID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inserted)
	assert.Contains(t, result.Message, "3頭")
}

func TestImport_DerivedIdentifiers(t *testing.T) {
	svc, fx := newService(t)

	path := writeDirect(t, [][]string{
		{"AB1234", "", "LLLL", "2023-04-01", ""},
		{"UR5678EN", "", "MMMM", "2023-05-02", ""},
	})
	_, err := svc.Import(path, "upload.xlsx", fx.farmID)
	require.NoError(t, err)

	// Prefixed line: prefix + digits of the tattoo. Base line: tattoo with
	// the UR/EN infixes stripped.
	var stored []entities.Boar
	require.NoError(t, fx.db.Order("tattoo").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "LL1234", stored[0].Name)
	assert.Equal(t, "5678", stored[1].Name)

	name, err := deriveName("ZZZZ", "XY77AB88")
	require.NoError(t, err)
	assert.Equal(t, "TW7788", name)
}

func TestImport_FilteredLayout(t *testing.T) {
	svc, fx := newService(t)

	path := writeFiltered(t, [][]string{
		{"AB1111", "", "LLLL", "2023-01-01", ""},
		{"AB2222", "", "ZZZZ", "2023-02-01", ""},
	})
	result, err := svc.Import(path, "export.xlsx", fx.farmID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
}

func TestImport_Idempotent(t *testing.T) {
	svc, fx := newService(t)

	rows := [][]string{
		{"AB1234", "", "LLLL", "2023-04-01", ""},
		{"CD5678", "", "NNNN", "2023-05-02", ""},
		{"EF9012", "", "ZZZZ", "2023-06-03", ""},
	}
	first, err := svc.Import(writeDirect(t, rows), "upload.xlsx", fx.farmID)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Inserted)

	second, err := svc.Import(writeDirect(t, rows), "upload.xlsx", fx.farmID)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Contains(t, second.Message, "未登録の雄はいませんでした")
}

func TestImport_SingleNewRowReportsNothing(t *testing.T) {
	svc, fx := newService(t)

	result, err := svc.Import(writeDirect(t, [][]string{
		{"AB1234", "", "LLLL", "2023-04-01", ""},
	}), "upload.xlsx", fx.farmID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Contains(t, result.Message, "未登録の雄はいませんでした")
}

func TestImport_UnknownLine(t *testing.T) {
	svc, fx := newService(t)

	_, err := svc.Import(writeDirect(t, [][]string{
		{"AB1234", "", "QQQQ", "2023-04-01", ""},
		{"CD5678", "", "LLLL", "2023-05-02", ""},
	}), "upload.xlsx", fx.farmID)
	require.ErrorIs(t, err, service.ErrUnknownLine)
}

func TestImport_UnrecognizedLayout(t *testing.T) {
	svc, fx := newService(t)

	path := writeWorkbook(t, [][]string{
		{"農場", "タトゥー", "雄ID"},
		{"GGP農場", "AB1234", "LL1234"},
	})
	_, err := svc.Import(path, "other.xlsx", fx.farmID)
	require.ErrorIs(t, err, service.ErrBadLayout)
}

func TestImport_SkipsRowsWithoutTattoo(t *testing.T) {
	svc, fx := newService(t)

	result, err := svc.Import(writeDirect(t, [][]string{
		{"AB1234", "", "LLLL", "2023-04-01", ""},
		{"", "", "LLLL", "2023-04-02", ""},
		{"CD5678", "", "NNNN", "2023-05-02", ""},
	}), "upload.xlsx", fx.farmID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
}

func TestDeriveName_Unknown(t *testing.T) {
	_, err := deriveName("XXXX", "AB1234")
	require.ErrorIs(t, err, service.ErrUnknownLine)
}
