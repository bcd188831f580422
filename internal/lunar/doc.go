// Package lunar converts Gregorian civil dates to the Korean/Chinese
// lunisolar calendar over the fixed table range 1900-01-31..2100-12-31.
//
// The conversion is driven by one read-only table of 201 bit-packed
// integers, one per lunar year:
//
//	bits 0-3   index of the leap month (0 = none that year)
//	bit  16    leap month has 30 days (else 29)
//	bits 1-12  regular month 1..12 has 30 days, tested via 0x10000 >> month
//
// Lunar data is supplementary display information, so conversion failure
// (out-of-range or invalid civil date) is reported with ok=false rather
// than an error. Callers render the absence, they do not handle a fault.
package lunar
