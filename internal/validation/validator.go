package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Davincible/oagen/pkg/design"
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/random"
)

var (
	seedPattern = regexp.MustCompile(`^\s*\d+\s*([,\s]\s*\d+\s*){3}$`)
	seedSplit   = regexp.MustCompile(`[,\s]+`)
)

func ValidateFamily(name string) (design.Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("family cannot be empty")
	}

	f, err := design.ParseFamily(name)
	if err != nil {
		names := make([]string, 0, len(design.Families()))
		for _, info := range design.Families() {
			names = append(names, info.Name)
		}
		return 0, fmt.Errorf("%w (known: %s)", err, strings.Join(names, ", "))
	}

	return f, nil
}

func ValidateLevels(q, maxOrder int) error {
	if q < 2 {
		return fmt.Errorf("levels must be at least 2 (got %d)", q)
	}

	if maxOrder > 0 && q > maxOrder {
		return fmt.Errorf("levels must be at most %d (got %d)", maxOrder, q)
	}

	if _, _, ok := galois.PrimePower(q); !ok {
		return fmt.Errorf("levels must be a prime power (got %d)", q)
	}

	return nil
}

func ValidateColumns(k int) error {
	if k < 0 {
		return fmt.Errorf("columns cannot be negative (got %d)", k)
	}

	return nil
}

func ValidateStrength(t int) error {
	if t < 0 {
		return fmt.Errorf("strength cannot be negative (got %d)", t)
	}

	return nil
}

// ParseSeed reads four Marsaglia seeds separated by commas or spaces.
func ParseSeed(input string) (random.Seed, error) {
	var seed random.Seed
	if !seedPattern.MatchString(input) {
		return seed, fmt.Errorf("seed must be four integers, e.g. 12,34,56,78")
	}

	parts := seedSplit.Split(strings.TrimSpace(input), -1)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return seed, fmt.Errorf("seed %d: %w", i+1, err)
		}
		seed[i] = v
	}

	if !seed.Valid() {
		return seed, fmt.Errorf("%w: each seed must be in 1..168 and they must not all be 1", random.ErrInvalidSeed)
	}

	return seed, nil
}

func ValidateOutputFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table", "csv", "json":
		return nil
	}

	return fmt.Errorf("output format must be table, csv or json (got %q)", format)
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
