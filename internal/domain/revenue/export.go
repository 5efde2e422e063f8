package revenue

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"날짜", "매출", "예약 수"}

// WriteCSV writes the daily table with a UTF-8 BOM so spreadsheet apps
// detect the Korean header.
func WriteCSV(w io.Writer, rows []Daily) error {
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Date, strconv.FormatInt(r.Total, 10), strconv.Itoa(r.Bookings)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFileName follows 매출_<label>_<yyyyMMdd>.csv.
func ExportFileName(label string, now time.Time, loc *time.Location) string {
	return fmt.Sprintf("매출_%s_%s.csv", label, now.In(loc).Format("20060102"))
}
