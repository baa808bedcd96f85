package serviceImp

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"herdbook/entities"
	"herdbook/pkg/boar/service"
)

// filteredMarker flags the "filtered export" layout produced by the breeding
// web system: the first cell holds the filter summary and the real header
// sits on row 3.
const filteredMarker = "Applied filters"

// directMarker is the first header cell of a plain export.
const directMarker = "タトゥー"

// headerAliases maps both the English and the Japanese column titles onto
// canonical keys.
var headerAliases = map[string]string{
	"Tattoo Number":  "tattoo",
	"タトゥー":          "tattoo",
	"Name":           "name",
	"雄ID":            "name",
	"Line":           "line",
	"系統":             "line",
	"Date birth":     "birth_on",
	"生年月日":          "birth_on",
	"Date Mortality": "culling_on",
	"淘汰日":           "culling_on",
}

// lineHeads maps a line code to the 2-letter prefix of derived identifiers.
// MMMM is the base line: its identifiers come from the tattoo itself with
// the UR/EN infixes stripped instead of a prefix.
var lineHeads = map[string]string{
	"LLLL": "LL",
	"NNNN": "TL",
	"ZZZZ": "TW",
	"MMMM": "",
}

var tattooInfixes = strings.NewReplacer("UR", "", "EN", "")

type importRow struct {
	tattoo    string
	line      string
	birthOn   *time.Time
	cullingOn *time.Time
}

func (s *boarService) Import(path, filename string, farmID uint) (*service.ImportResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	existing, err := s.boars.ListTattoos()
	if err != nil {
		return nil, err
	}
	registered := make(map[string]bool, len(existing))
	for _, t := range existing {
		registered[t] = true
	}

	var fresh []importRow
	for _, row := range rows {
		if !registered[row.tattoo] {
			fresh = append(fresh, row)
		}
	}
	if len(fresh) < 2 {
		return &service.ImportResult{
			Inserted: 0,
			Message:  fmt.Sprintf("%sに未登録の雄はいませんでした。", filename),
		}, nil
	}

	boars := make([]entities.Boar, 0, len(fresh))
	for _, row := range fresh {
		name, err := deriveName(row.line, row.tattoo)
		if err != nil {
			return nil, err
		}
		line, err := s.lines.FindByCode(row.line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", service.ErrUnknownLine, row.line)
		}
		boars = append(boars, entities.Boar{
			Tattoo:    row.tattoo,
			Name:      name,
			BirthOn:   row.birthOn,
			CullingOn: row.cullingOn,
			FarmID:    farmID,
			LineID:    line.ID,
		})
	}

	if err := s.boars.BulkCreate(boars); err != nil {
		return nil, err
	}
	return &service.ImportResult{
		Inserted: len(boars),
		Message:  fmt.Sprintf("%d頭追加しました。", len(boars)),
	}, nil
}

// readRows opens the workbook, detects which of the two accepted layouts it
// uses and returns the data rows with canonical columns. Rows without a
// tattoo are dropped.
func readRows(path string) ([]importRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, service.ErrBadLayout
	}

	headerIdx := -1
	top := strings.TrimSpace(rows[0][0])
	switch {
	case strings.Contains(top, filteredMarker):
		headerIdx = 2
	case top == directMarker:
		headerIdx = 0
	default:
		return nil, service.ErrBadLayout
	}
	if headerIdx >= len(rows) {
		return nil, service.ErrBadLayout
	}

	columns := map[string]int{}
	for i, title := range rows[headerIdx] {
		if key, ok := headerAliases[strings.TrimSpace(title)]; ok {
			columns[key] = i
		}
	}
	if _, ok := columns["tattoo"]; !ok {
		return nil, service.ErrBadLayout
	}
	if _, ok := columns["line"]; !ok {
		return nil, service.ErrBadLayout
	}

	cell := func(row []string, key string) string {
		idx, ok := columns[key]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var out []importRow
	for _, row := range rows[headerIdx+1:] {
		tattoo := cell(row, "tattoo")
		if tattoo == "" {
			continue
		}
		out = append(out, importRow{
			tattoo:    tattoo,
			line:      cell(row, "line"),
			birthOn:   parseDate(cell(row, "birth_on")),
			cullingOn: parseDate(cell(row, "culling_on")),
		})
	}
	return out, nil
}

// deriveName builds the stored boar identifier from the line code and the
// tattoo. Base line: tattoo minus the fixed infixes. Every other known
// line: head prefix plus the digits of the tattoo.
func deriveName(lineCode, tattoo string) (string, error) {
	head, ok := lineHeads[lineCode]
	if !ok {
		return "", fmt.Errorf("%w: %q", service.ErrUnknownLine, lineCode)
	}
	if head == "" {
		return tattooInfixes.Replace(tattoo), nil
	}
	return head + digitsOnly(tattoo), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseDate accepts the date shapes excelize renders for date cells plus
// plain ISO strings. Unparseable or empty values become nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	layouts := []string{
		"2006-01-02",
		"2006/01/02",
		"01-02-06",
		"1/2/06",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
