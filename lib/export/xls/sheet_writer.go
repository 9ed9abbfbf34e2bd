package xlsexport

import "github.com/xuri/excelize/v2"

// sheetWriter пишет табличную выгрузку построчно,
// первая строка - заголовок, стили общие для всех выгрузок приложения.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	cols  int
}

func newSheetWriter(f *excelize.File, sheet string, headers []string) (*sheetWriter, error) {
	w := &sheetWriter{f: f, sheet: sheet, cols: len(headers)}
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Bold:   true,
			Family: "Times New Roman",
			Size:   11,
		},
	})
	if err != nil {
		return nil, err
	}
	if err = w.styleRange(style, 1, 1); err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(w.cols)
	if err != nil {
		return nil, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return nil, err
	}
	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, header)
	}
	if err = w.writeRow(values...); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *sheetWriter) writeRow(values ...interface{}) error {
	w.row++
	for idx, value := range values {
		cell, err := excelize.CoordinatesToCellName(idx+1, w.row)
		if err != nil {
			return err
		}
		if err = w.f.SetCellValue(w.sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// applyDataStyle выравнивает ячейки с данными, вызывается после записи всех строк.
func (w *sheetWriter) applyDataStyle() error {
	if w.row < 2 {
		return nil
	}
	style, err := w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Family: "Times New Roman",
			Size:   11,
		},
	})
	if err != nil {
		return err
	}
	return w.styleRange(style, 2, w.row)
}

func (w *sheetWriter) styleRange(styleID, rowFrom, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(1, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(w.cols, rowTo)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, cellFirst, cellLast, styleID)
}
