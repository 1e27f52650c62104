package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSizes parses the raw --size flag values into pixel sizes. Each
// value is a single integer or a comma-separated list of integers. Range
// checks happen later during config validation.
func ParseSizes(values []string) ([]int, error) {
	var sizes []int

	for _, value := range values {
		for _, s := range strings.Split(value, ",") {
			s = strings.TrimSpace(s)

			size, err := strconv.Atoi(s)
			if err != nil {
				return nil, parsingError(s)
			}

			sizes = append(sizes, size)
		}
	}

	return sizes, nil
}

func parsingError(s string) error {
	return fmt.Errorf("parsing %q: sizes must be integers, e.g. '--size 16 --size 32' or '--size 16,32'", s)
}
