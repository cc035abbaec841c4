package core

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// DefaultCategory is assigned to expenses recorded without a category.
const DefaultCategory = "Other"

type (
	// Date is a calendar date (no time component, no timezone).
	Date struct {
		time.Time
	}

	// Money is an amount in cents. All arithmetic happens on cents so
	// sums and averages never accumulate floating-point error.
	Money struct {
		Cents int64
	}

	// Account is a registered account holder. Password is stored verbatim:
	// securing credentials is explicitly out of scope for this system.
	Account struct {
		ID        string    `json:"id"`
		FullName  string    `json:"fullName"`
		Email     string    `json:"email"`
		Password  string    `json:"password"`
		CreatedAt time.Time `json:"createdAt"`
	}

	// SessionAccount is the password-stripped projection of an Account
	// that gets persisted as the active session.
	SessionAccount struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
	}

	// Expense is one ledger record belonging to exactly one account.
	Expense struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Amount   Money  `json:"amountCents"`
		Category string `json:"category"`
		Date     Date   `json:"date"`
	}

	// CategoryAmount is an amount aggregated by category label.
	CategoryAmount struct {
		Category string
		Amount   Money
	}
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not signed in")

	ErrEmptyTitle    = errors.New("empty title")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// dateLayout is the only accepted wire and storage form for dates.
const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the calendar month, 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON is lenient: an unparsable stored date becomes the zero
// date rather than failing the whole ledger. Monthly filters exclude
// zero dates.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// NormalizeEmail trims and lower-cases an email so lookups and storage
// keys are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session returns the password-stripped projection of the account.
func (a Account) Session() SessionAccount {
	return SessionAccount{ID: a.ID, Email: a.Email, FullName: a.FullName}
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}
