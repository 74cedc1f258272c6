package valueobjects

import (
	"fmt"
	"net/mail"
	"strings"
)

const maxEmailLength = 254

// Email is a bare, lower-cased mailbox address used for review
// notifications. Display-name forms such as "Hana <h@x.org>" are rejected.
type Email struct {
	value string
}

func NewEmail(value string) (*Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch {
	case normalized == "":
		return nil, fmt.Errorf("email cannot be empty")
	case len(normalized) > maxEmailLength:
		return nil, fmt.Errorf("email cannot exceed %d characters", maxEmailLength)
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized || !strings.Contains(domainOf(normalized), ".") {
		return nil, fmt.Errorf("invalid email address %q", value)
	}
	return &Email{value: normalized}, nil
}

func (e *Email) String() string {
	if e == nil {
		return ""
	}
	return e.value
}

func (e *Email) Domain() string {
	if e == nil {
		return ""
	}
	return domainOf(e.value)
}

func domainOf(addr string) string {
	_, domain, _ := strings.Cut(addr, "@")
	return domain
}
