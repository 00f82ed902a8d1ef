package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a Steam app or depot id. Surrounding whitespace is ignored,
// anything other than a base-10 positive integer is rejected.
func ParseID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("id is empty")
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	if id == 0 {
		return 0, fmt.Errorf("id must be greater than zero")
	}

	return id, nil
}
