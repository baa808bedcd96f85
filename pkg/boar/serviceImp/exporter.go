package serviceImp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"herdbook/entities"
)

// Download column titles, in sheet order.
var exportHeaders = []string{"農場", "タトゥー", "雄ID", "系統", "生年月日", "淘汰日"}

const (
	exportColWidth   = 13
	exportHeaderFill = "CCECFF"
	exportFont       = "Yu Gothic"
	exportFontSize   = 12
)

func (s *boarService) Export(boars []entities.Boar) (*bytes.Buffer, string, error) {
	farmNames, lineAbbrs, err := s.lookupLabels(boars)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, title := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", err
		}
	}

	for i, b := range boars {
		values := []any{
			farmNames[b.FarmID],
			b.Tattoo,
			b.Name,
			lineAbbrs[b.LineID],
			formatDate(b.BirthOn),
			formatDate(b.CullingOn),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	if err := applyFormat(f, sheet, len(boars)); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s_boar_list.xlsx", time.Now().Format("060102150405"))
	return buf, filename, nil
}

// lookupLabels resolves farm ids to farm names and line ids to line
// abbreviations for the exported sheet.
func (s *boarService) lookupLabels(boars []entities.Boar) (map[uint]string, map[uint]string, error) {
	farmNames := map[uint]string{}
	lineAbbrs := map[uint]string{}
	for _, b := range boars {
		if _, ok := farmNames[b.FarmID]; !ok {
			farm, err := s.farms.FindByID(b.FarmID)
			if err != nil {
				return nil, nil, err
			}
			farmNames[b.FarmID] = farm.Name
		}
		if _, ok := lineAbbrs[b.LineID]; !ok {
			line, err := s.lines.FindByID(b.LineID)
			if err != nil {
				return nil, nil, err
			}
			lineAbbrs[b.LineID] = line.Abbreviation
		}
	}
	return farmNames, lineAbbrs, nil
}

// applyFormat sets the fixed sheet styling: constant column width, light
// blue header fill, thin borders everywhere, Yu Gothic with shrink-to-fit.
func applyFormat(f *excelize.File, sheet string, rows int) error {
	lastCol, err := excelize.ColumnNumberToName(len(exportHeaders))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, exportColWidth); err != nil {
		return err
	}

	borders := []excelize.Border{
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	font := &excelize.Font{Family: exportFont, Size: exportFontSize}
	shrink := &excelize.Alignment{ShrinkToFit: true}

	headStyle, err := f.NewStyle(&excelize.Style{
		Border:    borders,
		Font:      font,
		Alignment: shrink,
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{exportHeaderFill},
		},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headStyle); err != nil {
		return err
	}

	if rows == 0 {
		return nil
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Border:    borders,
		Font:      font,
		Alignment: shrink,
	})
	if err != nil {
		return err
	}
	lastCell := fmt.Sprintf("%s%d", lastCol, rows+1)
	return f.SetCellStyle(sheet, "A2", lastCell, bodyStyle)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
