/*
Package batch loads and evaluates HCL batch-conversion files.

A batch file declares named numerals, optionally with the value they are
expected to convert to:

	numeral "founding" {
	  value  = "MCMXCIV"
	  expect = 1994
	}

	numeral "shouted" {
	  value  = upper("mmxxiii")
	  expect = roman("MM") + 23
	}

Attributes are HCL expressions. Besides the roman() function, upper, lower,
trimspace and join from the cty standard library are available.
*/
package batch
