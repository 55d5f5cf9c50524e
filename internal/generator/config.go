package generator

import (
	"math"
	"strconv"
)

// DefaultOutputPath is the file written in the working directory.
const DefaultOutputPath = "output.maz"

// Config holds the options for a single generation run.
type Config struct {
	// Dimension is the side length of the square grid. Negative values are
	// accepted and produce an empty file.
	Dimension int

	// OutputPath is the file to create or truncate.
	OutputPath string

	// Seed for random number generation. A seed of 0 means the current
	// Unix time in seconds is used.
	Seed int64
}

// ParseArgs builds a Config from the positional arguments, excluding the
// program name. Only the first argument is read.
func ParseArgs(args []string) (Config, error) {
	if len(args) < 1 {
		return Config{}, ErrMissingDimension
	}

	dim := ParseDimension(args[0])
	if dim == 0 {
		return Config{}, ErrZeroDimension
	}

	return Config{
		Dimension:  dim,
		OutputPath: DefaultOutputPath,
	}, nil
}

// ParseDimension converts s the way C's atoi does: leading whitespace is
// skipped, an optional sign is read, then decimal digits up to the first
// non-digit. Input without digits, or outside the 32-bit range, yields 0.
func ParseDimension(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}

	n, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
		return 0
	}
	return int(n)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
