package roman

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Parse converts a Roman numeral to its integer value. Input is
// case-insensitive. Errors match ErrIllegalCharacter or ErrInvalidConstruct
// and carry input unchanged.
func Parse(input string) (int64, error) {
	digits, err := validate(input, Normalize(input))
	if err != nil {
		return 0, err
	}
	return Sum(digits), nil
}

// Normalize upper-cases s. A Caser keeps state, so each call builds its own.
func Normalize(s string) string {
	return cases.Upper(language.Und).String(s)
}
