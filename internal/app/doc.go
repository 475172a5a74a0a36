// Package app contains the application lifecycle. It wires configuration,
// logging and output around the roman numeral parser and runs one of three
// modes: the interactive shell, one-shot conversion of arguments, or HCL
// batch files. It is decoupled from any specific entrypoint.
package app
