package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	// AmbiguousChars are glyphs that are easily confused visually and
	// removed from every pool when Options.ExcludeAmbiguous is set.
	AmbiguousChars = "Il1O0o"

	MinLength = 4
	MaxLength = 128

	MinCount = 1
	MaxCount = 50
)

var (
	ErrInvalidLength               = errors.New("password length must be between 4 and 128")
	ErrNoActiveCategory            = errors.New("at least one character category must be selected")
	ErrLengthTooSmallForCategories = errors.New("password length must be at least equal to the number of selected categories")
	ErrInvalidCount                = errors.New("count must be between 1 and 50")
)

// CategoryExhaustedError reports that exclusions emptied an active
// category's pool. It carries the category name so the caller can
// identify the offending field.
type CategoryExhaustedError struct {
	Category string
}

func (e *CategoryExhaustedError) Error() string {
	return "no characters left in category " + e.Category + " after exclusions"
}

// Options configures the password generator. The zero value is not
// usable; start from DefaultOptions or set Length and at least one
// category explicitly.
type Options struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
	ExcludeChars     string
	RequireEach      bool
}

// DefaultOptions returns the documented defaults: 16 characters,
// letters and digits, no symbols, ambiguous glyphs excluded, every
// active category guaranteed to appear.
func DefaultOptions() Options {
	return Options{
		Length:           16,
		Uppercase:        true,
		Lowercase:        true,
		Numbers:          true,
		Symbols:          false,
		ExcludeAmbiguous: true,
		RequireEach:      true,
	}
}

// pool is one active category's alphabet after exclusions.
type pool struct {
	name  string
	chars string
}

// Generator produces passwords from an injected RandomSource. Apart
// from source draws each call is a pure computation, so a single
// Generator is safe for concurrent use when its source is.
type Generator struct {
	src RandomSource
}

// NewGenerator creates a Generator backed by the given source.
func NewGenerator(src RandomSource) *Generator {
	return &Generator{src: src}
}

// Generate creates one random password satisfying the given options.
// Validation failures are reported as the sentinel errors above or as
// *CategoryExhaustedError; any other error comes from the random
// source and is not an input problem.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrInvalidLength
	}

	pools, err := buildPools(opts)
	if err != nil {
		return "", err
	}

	if opts.RequireEach && opts.Length < len(pools) {
		return "", ErrLengthTooSmallForCategories
	}

	var combined strings.Builder
	for _, p := range pools {
		combined.WriteString(p.chars)
	}
	all := combined.String()

	result := make([]byte, 0, opts.Length)

	// Guarantee one character from each active category. The draw order
	// is the fixed category order; only the shuffle below randomizes
	// positions.
	if opts.RequireEach {
		for _, p := range pools {
			ch, err := g.randChar(p.chars)
			if err != nil {
				return "", err
			}
			result = append(result, ch)
		}
	}

	// Fill the remaining positions from the combined pool, one
	// independent draw each, so a category with a larger pool
	// contributes proportionally more characters.
	for len(result) < opts.Length {
		ch, err := g.randChar(all)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Always shuffle: without it the guaranteed category characters
	// would occupy the leading positions.
	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateMany creates count independent passwords. Each password
// redraws its own randomness; the result is not a batch shuffle of one
// large draw.
func (g *Generator) GenerateMany(count int, opts Options) ([]string, error) {
	if count < MinCount || count > MaxCount {
		return nil, ErrInvalidCount
	}

	passwords := make([]string, count)
	for i := range passwords {
		pw, err := g.Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords[i] = pw
	}
	return passwords, nil
}

// buildPools assembles the active category pools in fixed order
// (uppercase, lowercase, numbers, symbols) with the exclusion set
// applied. An active category emptied by exclusions is an error, not a
// silently skipped category.
func buildPools(opts Options) ([]pool, error) {
	bases := []struct {
		name   string
		chars  string
		active bool
	}{
		{"uppercase", uppercaseChars, opts.Uppercase},
		{"lowercase", lowercaseChars, opts.Lowercase},
		{"numbers", numberChars, opts.Numbers},
		{"symbols", symbolChars, opts.Symbols},
	}

	anyActive := false
	for _, b := range bases {
		if b.active {
			anyActive = true
			break
		}
	}
	if !anyActive {
		return nil, ErrNoActiveCategory
	}

	exclude := opts.ExcludeChars
	if opts.ExcludeAmbiguous {
		exclude += AmbiguousChars
	}

	var pools []pool
	for _, b := range bases {
		if !b.active {
			continue
		}
		filtered := removeChars(b.chars, exclude)
		if filtered == "" {
			return nil, &CategoryExhaustedError{Category: b.name}
		}
		pools = append(pools, pool{name: b.name, chars: filtered})
	}
	return pools, nil
}

// removeChars returns chars with every character in exclude removed.
func removeChars(chars, exclude string) string {
	if exclude == "" {
		return chars
	}
	var b strings.Builder
	for _, c := range chars {
		if !strings.ContainsRune(exclude, c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// randChar picks a uniform random character from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.src.IntN(len(charset))
	if err != nil {
		return 0, fmt.Errorf("drawing character: %w", err)
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
