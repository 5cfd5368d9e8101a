package sweep

import (
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// SheetName 扫描结果工作表名称
const SheetName = "Sweep"

// WriteXLSX 将扫描结果写为 xlsx 表格，首行为表头
func WriteXLSX(w io.Writer, points []Point) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "创建工作表失败")
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{"Power", "Resistance"}); err != nil {
		return err
	}
	for i, pt := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{float64(pt.Power), cellValue(pt.Resistance)}); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// cellValue 非有限值以文本写入
func cellValue(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}
