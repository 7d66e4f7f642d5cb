/*
Package money implements immutable monetary values in various currencies.
It leverages the [decimal] package's capabilities for handling decimal floating-point
numbers and combines it with a [Currency] type for representing different currencies.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Amounts always held at the canonical precision of their currency
  - Strict or rounding construction, selected by [Policy]
  - Conversion to and from sub-units, such as cents
  - Arithmetic and comparison operations that never mix currencies
  - Dynamic operator dispatch with operand type checks, see [Apply]

# Representation

The package consists of two main types: [Money] and [Currency].
A Money value consists of a Currency and a decimal.Decimal amount.
The Currency type represents a currency and is implemented as
an integer index into in-memory arrays containing information
such as code, name, sub-unit divisor, and display precision.
These rounding facts are looked up through the [Registry] interface.

The amount of a Money value always has exactly [Currency.Precision] digits
after the decimal point.
Hence, "USD 1.2" is stored as 1.20 and two Money values are numerically
equal if and only if they are equal according to the == operator.

# Rounding

Every amount that enters a Money value, whether passed to a constructor
or produced by arithmetic, is rounded by [RoundToCurr] in two stages:

 1. to the sub-unit step of the currency, for example 0.01 for centimes;
 2. to the display precision of the currency.

Both stages round half away from zero.
For most currencies the two stages coincide.
For currencies such as the Guinean Franc, which has 100 centimes but is
displayed without fractional digits, they do not: 4.4985 becomes 4.50
in the first stage and 5 in the second one.

Constructors accept a [Policy].
In [Strict] mode an amount with more precision than its currency allows is
rejected with [*InvalidAmountError].
In [Round] mode it is rounded.
Results of arithmetic operations are always rounded.

# Supported Ranges

The range of monetary values supported depends on the currency's precision and
the Decimal's coefficient, which holds at most 19 digits.
For example, US Dollar amounts may have up to 17 digits in the integer part.
For more information, refer to the Supported Ranges section of the [decimal]
package description.

# Operations

The package provides arithmetic and comparison operations for monetary values,
such as Add, Sub, Mul, Quo, QuoInt, Rem, and Rat.
Quotients are truncated toward zero, and remainders take the sign of
the dividend.
Dividing money by money of the same currency returns a plain decimal ratio.
It also supports splitting money into equal parts.

# Errors

Errors may occur during the parsing of Money and Currency values, as well
as during arithmetic operations when certain conditions are not met
(e.g., currency mismatch, division by zero, coefficient overflow).
The package returns errors that wrap the sentinel values, such as
[ErrCurrencyMismatch], so they can be matched with [errors.Is].
Functions with the Must prefix panic instead.
*/
package money
