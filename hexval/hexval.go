package hexval

import (
	"math"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrEmpty  = errors.New("no hex digits")
	ErrSyntax = errors.New("invalid hex digit")
	ErrRange  = errors.New("value out of range")
)

// digits strips an optional 0x/0X prefix.
func digits(raw string) (string, error) {
	d := raw
	if len(d) >= 2 && d[0] == '0' && (d[1] == 'x' || d[1] == 'X') {
		d = d[2:]
	}
	if d == "" {
		return "", ErrEmpty
	}
	return d, nil
}

func parse(raw string, bitSize int) (uint64, error) {
	d, err := digits(raw)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(d, 16, bitSize)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, ErrRange
		}
		return 0, ErrSyntax
	}
	return v, nil
}

// Uint decodes raw as an unsigned integer of any width.
func Uint(raw string) (*big.Int, error) {
	d, err := digits(raw)
	if err == nil && (d[0] == '+' || d[0] == '-') {
		err = ErrSyntax
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %q as uint", raw)
	}
	v, ok := new(big.Int).SetString(d, 16)
	if !ok {
		return nil, errors.Wrapf(ErrSyntax, "unable to decode %q as uint", raw)
	}
	return v, nil
}

// Float32 reinterprets the big-endian 32-bit pattern in raw as an IEEE-754
// single. NaN payloads, infinities and subnormals are preserved.
func Float32(raw string) (float32, error) {
	v, err := parse(raw, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to decode %q as float32 bits", raw)
	}
	return math.Float32frombits(uint32(v)), nil
}
