package janggi

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidNotation = errors.New("invalid square notation")

// ParseSquare 解析 "e2"、"a10" 这样的记法：列 a..i，行 1..10
func ParseSquare(s string) (Square, error) {
	if len(s) < 2 || len(s) > 3 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	letter := s[0]
	if letter < 'a' || letter >= 'a'+Cols {
		return NoSquare, fmt.Errorf("%w: column out of range in %q", ErrInvalidNotation, s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || s[1] == '+' || s[1] == '-' {
		return NoSquare, fmt.Errorf("%w: bad row in %q", ErrInvalidNotation, s)
	}
	if n < 1 || n > Rows {
		return NoSquare, fmt.Errorf("%w: row out of range in %q", ErrInvalidNotation, s)
	}
	return indexOf(n-1, int(letter-'a')), nil
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string(rune('a'+colOf(sq))) + strconv.Itoa(rowOf(sq)+1)
}
