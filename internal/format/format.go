package format

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

// Number formats n with comma thousands separators (1234567 → "1,234,567").
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Date formats t as 2006年1月2日.
func Date(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// Amount formats a maximum benefit amount given in 万円.
// Non-numeric input is shown as-is.
func Amount(man string) string {
	if n, err := strconv.ParseInt(man, 10, 64); err == nil {
		man = Number(n)
	}
	return "最大 " + man + "万円"
}

// Percent formats a 0.0–1.0 fraction as a whole percentage.
func Percent(f float64) string {
	return fmt.Sprintf("%d%%", int(f*100+0.5))
}
