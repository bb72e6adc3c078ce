// Package decimal renders and parses the canonical base 10 value that every
// conversion pivots through.
//
// The canonical value is a float64. Its text form is the shortest decimal
// that parses back to the same float64, written without an exponent:
//
//  | Value       | Text          |
//  |-------------|---------------|
//  | 0.5         | 0.5           |
//  | 5           | 5             |
//  | -5          | -5            |
//  | 1e21        | 1000000000000000000000 |
//  | 0.1         | 0.1           |
//  | 6.25e-05    | 0.0000625     |
//  |-------------|---------------|
//
// Parsing accepts plain and scientific notation ("1.5", "-2", "1e3").
package decimal
