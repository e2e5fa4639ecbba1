package crypto

import "unicode"

// DefaultMinLength is the minimum length used for the meets_min_length
// check when the caller does not supply one.
const DefaultMinLength = 8

// Strength labels, a pure function of the score.
const (
	StrengthVeryWeak = "very_weak"
	StrengthWeak     = "weak"
	StrengthModerate = "moderate"
	StrengthStrong   = "strong"
)

// Requirement result keys.
const (
	ReqMinLength        = "min_length"
	ReqRequireUppercase = "require_uppercase"
	ReqRequireLowercase = "require_lowercase"
	ReqRequireNumbers   = "require_numbers"
	ReqRequireSymbols   = "require_symbols"
)

// Checks are the raw facts computed about a password.
type Checks struct {
	HasUppercase   bool
	HasLowercase   bool
	HasNumbers     bool
	HasSymbols     bool
	Length         int
	MeetsMinLength bool
}

// Requirements are optional caller-supplied rules. Nil fields are not
// enforced and produce no requirement result. A require flag supplied
// as false is a waived rule and behaves like an absent one.
type Requirements struct {
	MinLength        *int
	RequireUppercase *bool
	RequireLowercase *bool
	RequireNumbers   *bool
	RequireSymbols   *bool
}

// Report is the outcome of a strength evaluation.
type Report struct {
	Checks             Checks
	RequirementResults map[string]bool
	Score              int
	Strength           string
	Passed             bool
}

// Evaluate scores a password against fixed heuristics and records
// which of the supplied requirements it satisfies. It never fails; an
// empty password is legal input and scores as very weak.
func Evaluate(password string, reqs Requirements) Report {
	minLength := DefaultMinLength
	if reqs.MinLength != nil {
		minLength = *reqs.MinLength
	}

	runes := []rune(password)
	checks := Checks{Length: len(runes)}
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			checks.HasUppercase = true
		case unicode.IsLower(r):
			checks.HasLowercase = true
		case unicode.IsDigit(r):
			checks.HasNumbers = true
		default:
			checks.HasSymbols = true
		}
	}
	checks.MeetsMinLength = checks.Length >= minLength

	results := make(map[string]bool)
	if reqs.MinLength != nil {
		results[ReqMinLength] = checks.MeetsMinLength
	}
	if reqs.RequireUppercase != nil && *reqs.RequireUppercase {
		results[ReqRequireUppercase] = checks.HasUppercase
	}
	if reqs.RequireLowercase != nil && *reqs.RequireLowercase {
		results[ReqRequireLowercase] = checks.HasLowercase
	}
	if reqs.RequireNumbers != nil && *reqs.RequireNumbers {
		results[ReqRequireNumbers] = checks.HasNumbers
	}
	if reqs.RequireSymbols != nil && *reqs.RequireSymbols {
		results[ReqRequireSymbols] = checks.HasSymbols
	}

	passed := true
	for _, ok := range results {
		if !ok {
			passed = false
			break
		}
	}

	score := scorePassword(runes, checks)

	return Report{
		Checks:             checks,
		RequirementResults: results,
		Score:              score,
		Strength:           strengthLabel(score),
		Passed:             passed,
	}
}

// scorePassword computes the additive 0-100 score: a length tier, a
// bonus per character class present, and an entropy bonus rewarding
// low character repetition.
func scorePassword(runes []rune, checks Checks) int {
	score := lengthTier(checks.Length)

	if checks.HasUppercase {
		score += 15
	}
	if checks.HasLowercase {
		score += 15
	}
	if checks.HasNumbers {
		score += 15
	}
	if checks.HasSymbols {
		score += 20
	}

	distinct := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		distinct[r] = struct{}{}
	}
	denom := checks.Length
	if denom < 1 {
		denom = 1
	}
	score += 5 * len(distinct) / denom

	if score > 100 {
		score = 100
	}
	return score
}

// lengthTier returns the highest applicable length bucket.
func lengthTier(length int) int {
	switch {
	case length >= 20:
		return 30
	case length >= 16:
		return 25
	case length >= 12:
		return 20
	case length >= 8:
		return 10
	default:
		return 5
	}
}

// strengthLabel maps a score to its fixed label.
func strengthLabel(score int) string {
	switch {
	case score >= 80:
		return StrengthStrong
	case score >= 60:
		return StrengthModerate
	case score >= 40:
		return StrengthWeak
	default:
		return StrengthVeryWeak
	}
}
