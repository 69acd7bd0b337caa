// Package money implements a Money type used to represent
// a monetary value as the multiset of denomination units
// (coins and notes) composing it, rather than a single scalar:
//
// - each unit is stored in its lowest denominator form,
// fils for the dinar (1 dinar = 100 piasters = 1000 fils).
//
// - units are kept sorted in descending order and
// duplicates are allowed, one entry per physical coin or note.
//
// - equality and formatting look only at the total amount,
// the composition is visible through Denominations.
//
// Money values are immutable. Every operation returns a new
// value and leaves its operands untouched.
package money
