// Package input loads the value list: a plain text file holding one integer
// per line. Parsing fails fast on the first malformed line.
package input
