package timeutil

import (
	"time"
)

// AST is the Arabia Standard Time location (UTC+3). All business dates
// (check-in, check-out, payment dates, deadlines) are interpreted in it.
var AST *time.Location

func init() {
	var err error
	AST, err = time.LoadLocation("Asia/Riyadh")
	if err != nil {
		// Fallback: create fixed zone if Asia/Riyadh not available
		AST = time.FixedZone("AST", 3*60*60) // UTC+3
	}
}

// Now returns the current time in AST
func Now() time.Time {
	return time.Now().In(AST)
}

// ToAST converts any time to AST
func ToAST(t time.Time) time.Time {
	return t.In(AST)
}

// ParseInAST parses a time string and returns it in AST
func ParseInAST(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, AST)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatAST formats a time in AST using the given layout
func FormatAST(t time.Time, layout string) string {
	return t.In(AST).Format(layout)
}

// StartOfDay returns the start of day (00:00:00) in AST for the given time
func StartOfDay(t time.Time) time.Time {
	ast := t.In(AST)
	return time.Date(ast.Year(), ast.Month(), ast.Day(), 0, 0, 0, 0, AST)
}

// Common layouts for AST formatting
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
