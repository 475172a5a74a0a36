/*
Package roman converts Roman numerals into integers.

Conversion runs in two stages. The validator first rejects anything that is
not a well-formed numeral: characters outside IVXLCDM, and five structural
constructs such as "IIII", "VV", "IVI", "IIV" and "VX". The summation engine
then walks the validated digits left to right, subtracting a digit that sits
directly before a larger one and adding every other digit.

Input is case-insensitive. All functions are pure and safe for concurrent
use.
*/
package roman
