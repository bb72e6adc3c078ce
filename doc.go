// Package numconv shows one real number in every supported representation.
//
// A value is given in one input form, normalized to a canonical float64 and
// then rendered in all forms:
//
//  | Form    | Description      | Input        | Permitted       |
//  |---------|------------------|--------------|-----------------|
//  | binary  | Binary           | text         | 0 1 . -         |
//  | decimal | Decimal          | number, text | 0-9 . - e       |
//  | hex     | Hexadecimal      | text         | 0-9 a-f . -     |
//  | s754    | IEEE 754 Single  | text         | 0 1 (32 bits)   |
//  | d754    | IEEE 754 Double  | text         | 0 1 (64 bits)   |
//  | comp1   | One's Complement | text         | 0 1             |
//  | comp2   | Two's Complement | text         | 0 1             |
//  |---------|------------------|--------------|-----------------|
//
// Radix strings and the IEEE 754 significand are truncated to the digit
// budget rather than rounded. The complement forms only exist for integer
// values and are nil otherwise. Values outside the normal range of single or
// double precision fail with ieee754.Unsupported.
package numconv
