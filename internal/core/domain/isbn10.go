package domain

import (
	"strconv"

	"go.uber.org/zap"
)

const (
	MsgISBN10Length   = "ISBN 10 should contain 10 digits"
	MsgISBN10Checksum = "ISBN 10 digit sum should be divisible by 11"
)

const isbn10Len = 10

// ValidateISBN10 checks the ISBN-10 check digit of value and returns value
// unchanged on success. Characters other than 0-9, X and x are dropped before
// counting, so "0-13-609181-4" is accepted as is.
func ValidateISBN10(value string) (string, error) {
	zap.L().Debug("validate isbn_10", zap.String("value", value))

	chars := make([]rune, 0, isbn10Len)
	for _, c := range value {
		if isISBN10Char(c) {
			chars = append(chars, c)
		}
	}
	if len(chars) != isbn10Len {
		return "", &FormatError{Value: value, Message: MsgISBN10Length}
	}

	sum := 0
	for i, c := range chars {
		sum += (isbn10Len - i) * isbn10Digit(c)
	}
	if sum%11 != 0 {
		return "", &FormatError{Value: value, Message: MsgISBN10Checksum}
	}
	return value, nil
}

func isISBN10Char(c rune) bool {
	return (c >= '0' && c <= '9') || c == 'X' || c == 'x'
}

func isbn10Digit(c rune) int {
	if c == 'X' || c == 'x' {
		return 10
	}
	n, _ := strconv.Atoi(string(c))
	return n
}
