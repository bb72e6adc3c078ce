// Package ieee754 encodes and decodes IEEE-754 binary interchange bit
// patterns by hand, without reinterpreting the bits of a native float.
//
// A pattern is laid out as a sign bit, a biased exponent (the
// characteristic) and the fractional part of the normalized significand:
//
//  | 0 | 1 ... e | e+1 ... w-1 |
//  |---|---------|-------------|
//  | s | char    | mantissa    |
//  |---|---------|-------------|
//
//  value = (-1)^s * (1 + mantissa) * 2^(char - bias)
//
// Supported widths:
//
//  | Width | Bias   | Exponent | Significand |
//  |-------|--------|----------|-------------|
//  | 16    | 15     | 5        | 10          |
//  | 32    | 127    | 8        | 23          |
//  | 64    | 1023   | 11       | 52          |
//  | 128   | 16383  | 15       | 112         |
//  | 256   | 262143 | 19       | 236         |
//  |-------|--------|----------|-------------|
//
// The mantissa is truncated to the significand width, never rounded. For
// example 0.1 in 32 bits:
//
//  | 0 | 0 1 1 1 1 0 1 1 | 1 0 0 1 1 0 0 1 1 0 0 1 1 0 0 1 1 0 0 1 1 0 0 |
//
// where a rounding encoder would end in ...1 1 0 1.
//
// Zero is all zero bits. Subnormal numbers, infinities and NaN are not
// representable and are rejected with Unsupported.
package ieee754
