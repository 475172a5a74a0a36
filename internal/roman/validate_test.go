package roman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		wantCode Code
		wantRule string
	}{
		{name: "single digit", input: "I"},
		{name: "subtractive pair", input: "IX"},
		{name: "three repeats", input: "XXX"},
		{name: "many thousands", input: "MMMMM"},
		{name: "full year", input: "MCMXCIV"},
		{name: "illegal letter", input: "ABC", wantCode: CodeIllegalCharacter},
		{name: "lower case is not normalized here", input: "iv", wantCode: CodeIllegalCharacter},
		{name: "digit", input: "X1", wantCode: CodeIllegalCharacter},
		{name: "space", input: "X I", wantCode: CodeIllegalCharacter},
		{name: "empty", input: "", wantCode: CodeInvalidConstruct, wantRule: "empty numeral"},
		{name: "four ones", input: "IIII", wantCode: CodeInvalidConstruct, wantRule: "repeating digit"},
		{name: "four tens inside", input: "MXXXXI", wantCode: CodeInvalidConstruct, wantRule: "repeating digit"},
		{name: "doubled five", input: "VV", wantCode: CodeInvalidConstruct, wantRule: "repeating half measure"},
		{name: "doubled fifty", input: "XLL", wantCode: CodeInvalidConstruct, wantRule: "repeating half measure"},
		{name: "doubled five hundred", input: "MDD", wantCode: CodeInvalidConstruct, wantRule: "repeating half measure"},
		{name: "deductive and additive", input: "IVI", wantCode: CodeInvalidConstruct, wantRule: "same digit deductive and additive"},
		{name: "deductive and additive tens", input: "XCX", wantCode: CodeInvalidConstruct, wantRule: "same digit deductive and additive"},
		{name: "two deductive", input: "IIV", wantCode: CodeInvalidConstruct, wantRule: "multiple deductive digits"},
		{name: "two different deductive", input: "IXC", wantCode: CodeInvalidConstruct, wantRule: "multiple deductive digits"},
		{name: "half measure deductive", input: "VX", wantCode: CodeInvalidConstruct, wantRule: "half measure as deductive"},
		{name: "half measure deductive hundreds", input: "DM", wantCode: CodeInvalidConstruct, wantRule: "half measure as deductive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)
			if tc.wantCode == "" {
				require.NoError(t, err)
				return
			}

			var rerr *Error
			require.True(t, errors.As(err, &rerr), "expected *Error, got %v", err)
			assert.Equal(t, tc.wantCode, rerr.Code)
			assert.Equal(t, tc.wantRule, rerr.Rule)
			assert.Equal(t, tc.input, rerr.Input)
		})
	}
}

// adjacentHalfMeasure scans neighbouring positions instead of matching
// substrings.
func adjacentHalfMeasure(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == s[i+1] && (s[i] == 'V' || s[i] == 'L' || s[i] == 'D') {
			return true
		}
	}
	return false
}

func TestHasRepeatingHalfMeasure_MatchesAdjacentScan(t *testing.T) {
	t.Parallel()

	const alphabet = "IVXLCDM"
	const maxLen = 5

	var walk func(prefix string)
	checked := 0
	walk = func(prefix string) {
		if len(prefix) > 0 {
			digits, err := Digits(prefix)
			require.NoError(t, err)
			n := numeral{text: prefix, digits: digits}
			if hasRepeatingHalfMeasure(n) != adjacentHalfMeasure(prefix) {
				t.Fatalf("substring and adjacent scans disagree on %q", prefix)
			}
			checked++
		}
		if len(prefix) == maxLen {
			return
		}
		for _, r := range alphabet {
			walk(prefix + string(r))
		}
	}
	walk("")

	// 7 + 7^2 + ... + 7^5
	assert.Equal(t, 19607, checked)
}

func TestValidate_ChecksNeverFailLookup(t *testing.T) {
	t.Parallel()

	// Every rule runs on digits resolved up front, so valid alphabets
	// only ever yield nil or ErrInvalidConstruct.
	for _, s := range []string{"MMMM", "CMCM", "DCD", "LXL", "IIIIIII", "VIV", "MDCLXVI"} {
		err := Validate(s)
		if err != nil {
			assert.ErrorIs(t, err, ErrInvalidConstruct, s)
			assert.NotErrorIs(t, err, ErrUnknownSymbol, s)
		}
	}
}
