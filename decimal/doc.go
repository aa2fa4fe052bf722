/*
Package decimal implements immutable decimal floating-point numbers whose
rounding behavior is part of their type.

# Representation

[Decimal] is a generic struct parameterized by a [Policy]. The value consists of:

  - Sign: whether the decimal is negative.
  - Coefficient: an arbitrary-size unsigned integer.
  - Exponent: a base-10 exponent; the scale is its negation.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The same numeric value can have several representations: 1, 1.0 and 1.00 are
equal according to [Decimal.Equal] but differ according to [Decimal.CmpTotal].

# Policies

A policy fixes the rounding mode and the precision of a decimal type:

	| Policy    | Mode           | Precision |
	| --------- | -------------- | --------- |
	| [Plain]   | half away 0    | 38        |
	| [Down]    | toward -inf    | 38        |
	| [Up]      | toward +inf    | 38        |
	| [Bankers] | half to even   | 38        |

Decimals of different policies are different types and cannot be mixed by
accident. [MulWith] and [QuoWith] combine operands of different policies
explicitly; the result takes the policy of the second operand.

# Operations

Each arithmetic operation computes the exact result and rounds it to 38
significant digits using the mode of the policy. No intermediate value ever
exceeds this precision.

[Decimal.Rem] rounds the quotient toward negative infinity when the operands
have the same sign and toward positive infinity otherwise, so the remainder
always has the sign of the dividend.

# Errors

The arithmetic context traps the following conditions:

  - Division by zero: [ErrDivideByZero].
  - Overflow: the adjusted exponent exceeds [MaxExp]: [ErrOverflow].
  - Underflow: a result smaller than 10^[MinExp] loses digits: [ErrUnderflow].

Methods return these errors wrapped with the failed operation.
The Must variants, such as [Decimal.MustQuo], stop the program instead.
Inexact results are never an error: they are rounded according to the policy.

# Interoperability

Decimals convert losslessly to and from [shopspring decimals], [govalues decimals]
(within their 19-digit range) and PostgreSQL numerics through [pgx].
They also implement the text, JSON, BSON and database/sql interfaces.

[shopspring decimals]: https://pkg.go.dev/github.com/shopspring/decimal
[govalues decimals]: https://pkg.go.dev/github.com/govalues/decimal
[pgx]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype
*/
package decimal
