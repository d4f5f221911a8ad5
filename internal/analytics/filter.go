package analytics

import (
	"errors"
	"fmt"
	"strconv"

	"time"

	"github.com/carson-networks/finance-tracker/internal/finance"
)

var ErrInvalidFilter = errors.New("invalid filter")

// PieFilter narrows the transactions feeding the income/expense split.
// Month, Category, Type and Method accept finance.All.
type PieFilter struct {
	Year     string
	Month    string
	Category string
	Type     string
	Method   string
}

// LineFilter selects the month compared against the yearly average.
type LineFilter struct {
	Year  string
	Month string
}

// BarFilter selects the year of the monthly income/expense matrix.
type BarFilter struct {
	Year string
}

// DefaultPieFilter selects the whole current year with no other narrowing.
func DefaultPieFilter(now time.Time) PieFilter {
	return PieFilter{
		Year:     strconv.Itoa(now.Year()),
		Month:    finance.All,
		Category: finance.All,
		Type:     finance.All,
		Method:   finance.All,
	}
}

// DefaultLineFilter selects the current month.
func DefaultLineFilter(now time.Time) LineFilter {
	return LineFilter{
		Year:  strconv.Itoa(now.Year()),
		Month: fmt.Sprintf("%02d", int(now.Month())),
	}
}

// DefaultBarFilter selects the current year.
func DefaultBarFilter(now time.Time) BarFilter {
	return BarFilter{Year: strconv.Itoa(now.Year())}
}

// NewPieFilter builds a PieFilter from user input. month may be a label,
// a key or All; the other dimensions are normalized against the taxonomy.
func NewPieFilter(year, month, category, txType, method string) (PieFilter, error) {
	f := PieFilter{Year: year, Month: finance.All, Category: finance.All, Type: finance.All, Method: finance.All}

	var err error
	if month != "" {
		if f, err = f.WithMonth(month); err != nil {
			return PieFilter{}, err
		}
	}
	if category != "" {
		if f, err = f.WithCategory(category); err != nil {
			return PieFilter{}, err
		}
	}
	if txType != "" {
		if f, err = f.WithType(txType); err != nil {
			return PieFilter{}, err
		}
	}
	if method != "" {
		if f, err = f.WithMethod(method); err != nil {
			return PieFilter{}, err
		}
	}
	return f, f.Validate()
}

// WithYear changes the year and resets the month to All.
func (f PieFilter) WithYear(year string) PieFilter {
	f.Year = year
	f.Month = finance.All
	return f
}

func (f PieFilter) WithMonth(month string) (PieFilter, error) {
	key, err := finance.NormalizeMonthKey(month)
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	f.Month = key
	return f, nil
}

func (f PieFilter) WithCategory(category string) (PieFilter, error) {
	if isAll(category) {
		f.Category = finance.All
		return f, nil
	}
	c, err := finance.ParseCategory(category)
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	f.Category = string(c)
	return f, nil
}

// WithType also accepts "Both" as the unfiltered value.
func (f PieFilter) WithType(txType string) (PieFilter, error) {
	if isAll(txType) || txType == "Both" {
		f.Type = finance.All
		return f, nil
	}
	t, err := finance.ParseTransactionType(txType)
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	f.Type = string(t)
	return f, nil
}

func (f PieFilter) WithMethod(method string) (PieFilter, error) {
	if isAll(method) {
		f.Method = finance.All
		return f, nil
	}
	m, err := finance.ParseMethod(method)
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	f.Method = string(m)
	return f, nil
}

// Period returns the date range selected by the filter.
func (f PieFilter) Period() finance.Period {
	return finance.MonthPeriod(f.Year, f.Month)
}

// Validate checks that every dimension holds a canonical value.
func (f PieFilter) Validate() error {
	if !finance.IsYear(f.Year) {
		return fmt.Errorf("%w: year %q", ErrInvalidFilter, f.Year)
	}
	if f.Month != finance.All {
		if _, err := finance.MonthKeyToLabel(f.Month); err != nil || len(f.Month) != 2 {
			return fmt.Errorf("%w: month %q", ErrInvalidFilter, f.Month)
		}
	}
	if f.Category == "" {
		return fmt.Errorf("%w: empty category", ErrInvalidFilter)
	}
	if f.Type != finance.All && f.Type != string(finance.TransactionTypeCredit) && f.Type != string(finance.TransactionTypeDebit) {
		return fmt.Errorf("%w: type %q", ErrInvalidFilter, f.Type)
	}
	if f.Method != finance.All {
		if m, err := finance.ParseMethod(f.Method); err != nil || string(m) != f.Method {
			return fmt.Errorf("%w: method %q", ErrInvalidFilter, f.Method)
		}
	}
	return nil
}

func (f PieFilter) matches(t finance.Transaction) bool {
	return f.Period().Contains(t.Date) &&
		(f.Category == finance.All || string(t.Category) == f.Category) &&
		(f.Type == finance.All || string(t.Type) == f.Type) &&
		(f.Method == finance.All || string(t.Method) == f.Method)
}

// NewLineFilter builds a LineFilter; month may be a label or a key but not All.
func NewLineFilter(year, month string) (LineFilter, error) {
	f := LineFilter{Year: year}
	f, err := f.WithMonth(month)
	if err != nil {
		return LineFilter{}, err
	}
	return f, f.Validate()
}

// WithYear changes the year and resets the month to January.
func (f LineFilter) WithYear(year string) LineFilter {
	f.Year = year
	f.Month = "01"
	return f
}

func (f LineFilter) WithMonth(month string) (LineFilter, error) {
	key, err := finance.NormalizeMonthKey(month)
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	if key == finance.All {
		return f, fmt.Errorf("%w: a specific month is required", ErrInvalidFilter)
	}
	f.Month = key
	return f, nil
}

// MonthLabel returns the short label of the selected month.
func (f LineFilter) MonthLabel() string {
	label, err := finance.MonthKeyToLabel(f.Month)
	if err != nil {
		return f.Month
	}
	return label
}

func (f LineFilter) Validate() error {
	if !finance.IsYear(f.Year) {
		return fmt.Errorf("%w: year %q", ErrInvalidFilter, f.Year)
	}
	if len(f.Month) != 2 {
		return fmt.Errorf("%w: month %q", ErrInvalidFilter, f.Month)
	}
	if _, err := finance.MonthKeyToLabel(f.Month); err != nil {
		return fmt.Errorf("%w: month %q", ErrInvalidFilter, f.Month)
	}
	return nil
}

func (f LineFilter) monthPeriod() finance.Period {
	return finance.MonthPeriod(f.Year, f.Month)
}

func (f LineFilter) yearPeriod() finance.Period {
	return finance.YearPeriod(f.Year)
}

// NewBarFilter builds a BarFilter for year.
func NewBarFilter(year string) (BarFilter, error) {
	f := BarFilter{Year: year}
	return f, f.Validate()
}

func (f BarFilter) WithYear(year string) BarFilter {
	f.Year = year
	return f
}

func (f BarFilter) Validate() error {
	if !finance.IsYear(f.Year) {
		return fmt.Errorf("%w: year %q", ErrInvalidFilter, f.Year)
	}
	return nil
}

func isAll(s string) bool {
	return s == "" || s == finance.All || s == "all"
}
