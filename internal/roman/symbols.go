package roman

import "fmt"

// Digit is one of the seven canonical Roman digit symbols.
type Digit struct {
	Symbol rune
	Value  int64
	// Half marks the 5x10^k digits (V, L, D). They never repeat and never
	// stand in subtractive position.
	Half bool
}

// canonical lists the seven digits in ascending order. It is never
// mutated; Lookup and Canonical hand out copies.
var canonical = [...]Digit{
	{Symbol: 'I', Value: 1},
	{Symbol: 'V', Value: 5, Half: true},
	{Symbol: 'X', Value: 10},
	{Symbol: 'L', Value: 50, Half: true},
	{Symbol: 'C', Value: 100},
	{Symbol: 'D', Value: 500, Half: true},
	{Symbol: 'M', Value: 1000},
}

// table is indexed by r-'A' for upper-case ASCII letters. A zero Digit marks
// a letter that is not a Roman digit.
var table = func() [26]Digit {
	var t [26]Digit
	for _, d := range canonical {
		t[d.Symbol-'A'] = d
	}
	return t
}()

// Canonical returns a copy of the seven digits, smallest first.
func Canonical() []Digit {
	return append([]Digit(nil), canonical[:]...)
}

// Lookup returns the digit for r. Only upper-case symbols are recognized;
// callers normalize first.
func Lookup(r rune) (Digit, error) {
	if r >= 'A' && r <= 'Z' {
		if d := table[r-'A']; d.Value != 0 {
			return d, nil
		}
	}
	return Digit{}, &Error{Code: CodeUnknownSymbol, Input: string(r)}
}

// ValueOf returns the magnitude of the digit r.
func ValueOf(r rune) (int64, error) {
	d, err := Lookup(r)
	if err != nil {
		return 0, err
	}
	return d.Value, nil
}

// IsHalfMeasure reports whether r is one of V, L or D.
func IsHalfMeasure(r rune) (bool, error) {
	d, err := Lookup(r)
	if err != nil {
		return false, err
	}
	return d.Half, nil
}

// Digits maps every character of s to its digit.
func Digits(s string) ([]Digit, error) {
	digits := make([]Digit, 0, len(s))
	for _, r := range s {
		d, err := Lookup(r)
		if err != nil {
			return nil, err
		}
		digits = append(digits, d)
	}
	return digits, nil
}

// String returns the digit's symbol.
func (d Digit) String() string {
	if d.Symbol == 0 {
		return fmt.Sprintf("Digit(%d)", d.Value)
	}
	return string(d.Symbol)
}
