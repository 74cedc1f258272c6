package valueobjects

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxNameLength = 150

var titleCaser = cases.Title(language.Und)

// PersonName is an optional first or last name. The zero value is an
// empty name.
type PersonName struct {
	value string
}

// NewPersonName trims the name and collapses inner whitespace. Blank input
// gives the empty name.
func NewPersonName(value string) (PersonName, error) {
	normalized := strings.Join(strings.Fields(value), " ")
	if len(normalized) > maxNameLength {
		return PersonName{}, fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	for _, r := range normalized {
		if unicode.IsControl(r) || unicode.IsDigit(r) {
			return PersonName{}, fmt.Errorf("name contains invalid characters: %q", value)
		}
	}
	return PersonName{value: normalized}, nil
}

func (n PersonName) String() string {
	return n.value
}

func (n PersonName) IsEmpty() bool {
	return n.value == ""
}

// Display title-cases each word, e.g. "abebe KEBEDE" -> "Abebe Kebede".
func (n PersonName) Display() string {
	return titleCaser.String(n.value)
}
