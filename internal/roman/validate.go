package roman

import "strings"

const (
	repeatingDigitMinLength         = 4
	deductiveAndAdditiveMinLength   = 3
	multipleDeductiveMinLength      = 3
	halfMeasureAsDeductiveMinLength = 2
)

// numeral is a normalized input together with its digits.
type numeral struct {
	text   string
	digits []Digit
}

// rule is a structural predicate that reports a violation.
type rule struct {
	name     string
	violated func(n numeral) bool
}

// rules run in this order; the first violation is reported.
var rules = []rule{
	{name: "repeating digit", violated: hasTooManyRepeatingDigits},
	{name: "repeating half measure", violated: hasRepeatingHalfMeasure},
	{name: "same digit deductive and additive", violated: hasSameDigitDeductiveAndAdditive},
	{name: "multiple deductive digits", violated: hasMultipleDeductiveDigits},
	{name: "half measure as deductive", violated: hasHalfMeasureAsDeductive},
}

// Validate reports whether s, already upper-cased, is a well-formed numeral.
// It returns an error matching ErrIllegalCharacter or ErrInvalidConstruct.
func Validate(s string) error {
	_, err := validate(s, s)
	return err
}

// validate checks normalized and returns its digits. Errors name input.
func validate(input, normalized string) ([]Digit, error) {
	digits, err := Digits(normalized)
	if err != nil {
		return nil, &Error{Code: CodeIllegalCharacter, Input: input}
	}
	if len(digits) == 0 {
		return nil, &Error{Code: CodeInvalidConstruct, Input: input, Rule: "empty numeral"}
	}

	n := numeral{text: normalized, digits: digits}
	for _, r := range rules {
		if r.violated(n) {
			return nil, &Error{Code: CodeInvalidConstruct, Input: input, Rule: r.name}
		}
	}
	return digits, nil
}

// hasTooManyRepeatingDigits finds a digit other than M repeated four or more
// times in a row, e.g. "IIII" instead of "IV".
func hasTooManyRepeatingDigits(n numeral) bool {
	d := n.digits
	if len(d) < repeatingDigitMinLength {
		return false
	}
	for i := 3; i < len(d); i++ {
		if d[i].Symbol != 'M' && d[i-3] == d[i-2] && d[i-2] == d[i-1] && d[i-1] == d[i] {
			return true
		}
	}
	return false
}

// hasRepeatingHalfMeasure matches "VV", "LL" or "DD" anywhere in the text.
func hasRepeatingHalfMeasure(n numeral) bool {
	return strings.Contains(n.text, "VV") ||
		strings.Contains(n.text, "LL") ||
		strings.Contains(n.text, "DD")
}

// hasSameDigitDeductiveAndAdditive finds a digit on both sides of a larger
// one, e.g. "IVI".
func hasSameDigitDeductiveAndAdditive(n numeral) bool {
	d := n.digits
	if len(d) < deductiveAndAdditiveMinLength {
		return false
	}
	for i := 1; i < len(d)-1; i++ {
		if d[i-1].Value < d[i].Value && d[i-1].Value == d[i+1].Value {
			return true
		}
	}
	return false
}

// hasMultipleDeductiveDigits finds two digits in a row that are both smaller
// than the digit after them, e.g. "IIV".
func hasMultipleDeductiveDigits(n numeral) bool {
	d := n.digits
	if len(d) < multipleDeductiveMinLength {
		return false
	}
	for i := 1; i < len(d)-1; i++ {
		if d[i-1].Value < d[i+1].Value && d[i].Value < d[i+1].Value {
			return true
		}
	}
	return false
}

// hasHalfMeasureAsDeductive finds V, L or D directly before a larger digit,
// e.g. "VX".
func hasHalfMeasureAsDeductive(n numeral) bool {
	d := n.digits
	if len(d) < halfMeasureAsDeductiveMinLength {
		return false
	}
	for i := 0; i < len(d)-1; i++ {
		if d[i].Half && d[i].Value < d[i+1].Value {
			return true
		}
	}
	return false
}
