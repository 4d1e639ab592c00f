// Package fractions implements an exact calculator for arithmetic on decimal
// numbers.
//
// Expressions contain integer and decimal literals like "12", "0.25", ".5",
// and "3.", the operators + - * /, unary minus and plus, and parentheses.
// Every result is exact: "0.1 + 0.2" is 3/10, and "1/3" is 1/3 rather than
// some nearby binary float. Numerators and denominators are 64-bit unsigned
// integers with a separate sign; results that do not fit are reported as
// errors instead of wrapping.
//
// Evaluation happens in three stages, each of which can be used separately:
// Lex produces tokens, ParseTokens produces an Expr, and Expr.Reduce produces a
// Fraction. Eval does all three. Fraction.Decimal renders a result with its
// repeating digits in parentheses, so 1/7 is "0.(142857)".
package fractions
