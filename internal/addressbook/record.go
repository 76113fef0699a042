package addressbook

import (
	"fmt"
	"time"
)

// BirthdayLayout is the accepted birthday format, e.g. "17.03.1990".
const BirthdayLayout = "02.01.2006"

// Record holds one contact: a name (the book key, immutable), a validated
// phone number and an optional birthday. Birthday is nil until set; once
// set it can be overwritten but not cleared.
type Record struct {
	Name     string
	Phone    string
	Birthday *time.Time
}

// NewRecord creates a record with a validated phone number.
func NewRecord(name, phone string) (*Record, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidArguments)
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	return &Record{
		Name:  name,
		Phone: phone,
	}, nil
}

// UpdatePhone replaces the stored phone number. On validation failure the
// old number is left unchanged.
func (r *Record) UpdatePhone(newPhone string) error {
	if err := validatePhone(newPhone); err != nil {
		return err
	}
	r.Phone = newPhone
	return nil
}

// AddBirthday parses a DD.MM.YYYY date and stores it, overwriting any
// previously set birthday.
func (r *Record) AddBirthday(value string) error {
	birthday, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	r.Birthday = &birthday
	return nil
}

// Display returns the record's one-line representation.
func (r *Record) Display() string {
	return fmt.Sprintf("Contact name: %s, phone: %s", r.Name, r.Phone)
}

// validatePhone accepts exactly 10 ASCII decimal digits.
func validatePhone(phone string) error {
	if len(phone) != 10 {
		return fmt.Errorf("%w: got %d characters", ErrInvalidPhoneNumber, len(phone))
	}
	for _, c := range []byte(phone) {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %q is not a digit", ErrInvalidPhoneNumber, c)
		}
	}
	return nil
}
