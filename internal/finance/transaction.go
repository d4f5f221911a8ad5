package finance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date layout of Transaction.Date.
const DateLayout = "2006-01-02"

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "Credit"
	TransactionTypeDebit  TransactionType = "Debit"
)

// Method is the payment method of a transaction.
type Method string

const (
	MethodUPI        Method = "UPI"
	MethodCard       Method = "Card"
	MethodCash       Method = "Cash"
	MethodNetBanking Method = "Net Banking"
)

// Category is the spending category of a transaction. Values outside the
// known set are kept as free text.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryRent          Category = "Rent"
	CategoryUtilities     Category = "Utilities"
	CategoryInsurance     Category = "Insurance"
	CategoryMiscellaneous Category = "Miscellaneous"
	CategoryIncome        Category = "Income"
)

var categories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategoryRent,
	CategoryUtilities,
	CategoryInsurance,
	CategoryMiscellaneous,
}

var methods = []Method{MethodUPI, MethodCard, MethodCash, MethodNetBanking}

var (
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyName       = errors.New("empty name")
	ErrEmptyCategory   = errors.New("empty category")
	ErrCommentsTooLong = errors.New("comments too long (max 500 characters)")
)

// Transaction is a single dated income or expense record.
type Transaction struct {
	ID       uuid.UUID
	Type     TransactionType
	Amount   decimal.Decimal
	Name     string
	Category Category
	Date     string
	Method   Method
	Comments string
}

// RawTransaction is a transaction as received from outside the service,
// before normalization.
type RawTransaction struct {
	ID       string
	Type     string
	Amount   string
	Name     string
	Category string
	Date     string
	Method   string
	Comments string
}

// Valid reports whether t can take part in aggregation: a parseable date,
// a known type and a non-negative amount.
func (t Transaction) Valid() bool {
	if !validDate(t.Date) {
		return false
	}
	if t.Type != TransactionTypeCredit && t.Type != TransactionTypeDebit {
		return false
	}
	return !t.Amount.IsNegative()
}

// IsCredit reports whether t is income.
func (t Transaction) IsCredit() bool {
	return t.Type == TransactionTypeCredit
}

// IsDebit reports whether t is an expense.
func (t Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit
}

// ParseTransactionType normalizes casing variants such as "debit" or "CREDIT".
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "credit":
		return TransactionTypeCredit, nil
	case "debit":
		return TransactionTypeDebit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// ParseMethod normalizes casing and separator variants of a payment method.
func ParseMethod(s string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	for _, m := range methods {
		if normalized == strings.ToLower(string(m)) {
			return m, nil
		}
	}
	if normalized == "netbanking" {
		return MethodNetBanking, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// ParseCategory maps s onto a known category ignoring case. Unknown values
// are returned trimmed.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrEmptyCategory
	}
	if strings.EqualFold(trimmed, string(CategoryIncome)) {
		return CategoryIncome, nil
	}
	for _, c := range categories {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return Category(trimmed), nil
}

// ParseAmount parses a non-negative decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q must not be negative", ErrInvalidAmount, s)
	}
	return amount, nil
}

// ParseDate accepts YYYY-MM-DD, or an RFC3339 timestamp whose date part is
// kept.
func ParseDate(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if i := strings.IndexByte(trimmed, 'T'); i == len(DateLayout) {
		trimmed = trimmed[:i]
	}
	if !validDate(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return trimmed, nil
}

// NormalizeTransaction converts a raw record into a Transaction.
func NormalizeTransaction(raw RawTransaction) (Transaction, error) {
	var id uuid.UUID
	if raw.ID != "" {
		parsed, err := uuid.FromString(raw.ID)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid id %q: %w", raw.ID, err)
		}
		id = parsed
	}

	txType, err := ParseTransactionType(raw.Type)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(raw.Amount)
	if err != nil {
		return Transaction{}, err
	}
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Transaction{}, ErrEmptyName
	}
	category, err := ParseCategory(raw.Category)
	if err != nil {
		return Transaction{}, err
	}
	date, err := ParseDate(raw.Date)
	if err != nil {
		return Transaction{}, err
	}
	method, err := ParseMethod(raw.Method)
	if err != nil {
		return Transaction{}, err
	}
	comments := strings.TrimSpace(raw.Comments)
	if len(comments) > 500 {
		return Transaction{}, ErrCommentsTooLong
	}

	return Transaction{
		ID:       id,
		Type:     txType,
		Amount:   amount,
		Name:     name,
		Category: category,
		Date:     date,
		Method:   method,
		Comments: comments,
	}, nil
}

// NormalizeTransactions converts raw records, silently dropping the ones
// that do not normalize.
func NormalizeTransactions(raws []RawTransaction) []Transaction {
	result := make([]Transaction, 0, len(raws))
	for _, raw := range raws {
		t, err := NormalizeTransaction(raw)
		if err != nil {
			continue
		}
		result = append(result, t)
	}
	return result
}

func validDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
