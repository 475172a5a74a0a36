package roman

// Sum returns the value of validated digits. A digit directly followed by a
// larger one is subtracted; every other digit, and always the last one, is
// added. The result is undefined for digits that did not pass Validate.
func Sum(digits []Digit) int64 {
	var sum int64
	for i, d := range digits {
		if i < len(digits)-1 && d.Value < digits[i+1].Value {
			sum -= d.Value
			continue
		}
		sum += d.Value
	}
	return sum
}
