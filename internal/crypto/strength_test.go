package crypto

import "testing"

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestEvaluateEmptyPassword(t *testing.T) {
	report := Evaluate("", Requirements{})

	if report.Checks.HasUppercase || report.Checks.HasLowercase ||
		report.Checks.HasNumbers || report.Checks.HasSymbols {
		t.Errorf("empty password has character class checks set: %+v", report.Checks)
	}
	if report.Checks.Length != 0 {
		t.Errorf("length = %d, want 0", report.Checks.Length)
	}
	if report.Checks.MeetsMinLength {
		t.Error("empty password should not meet the default minimum length")
	}
	if report.Score != 5 {
		t.Errorf("score = %d, want 5 (length tier only)", report.Score)
	}
	if report.Strength != StrengthVeryWeak {
		t.Errorf("strength = %q, want %q", report.Strength, StrengthVeryWeak)
	}
	if len(report.RequirementResults) != 0 {
		t.Errorf("unexpected requirement results: %v", report.RequirementResults)
	}
	if !report.Passed {
		t.Error("passed should be true when no requirements are supplied")
	}
}

func TestEvaluateScore(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		wantScore    int
		wantStrength string
	}{
		{
			// tier 5 + lowercase 15 + entropy 5*3/3
			name:         "short lowercase",
			password:     "abc",
			wantScore:    25,
			wantStrength: StrengthVeryWeak,
		},
		{
			// tier 10 + lowercase 15 + entropy 5*1/8
			name:         "repeated single character",
			password:     "aaaaaaaa",
			wantScore:    25,
			wantStrength: StrengthVeryWeak,
		},
		{
			// tier 10 + lowercase 15 + entropy 5*8/8
			name:         "eight distinct lowercase",
			password:     "abcdefgh",
			wantScore:    30,
			wantStrength: StrengthVeryWeak,
		},
		{
			// tier 20 + lowercase 15 + numbers 15 + entropy 5*12/12
			name:         "twelve chars two classes",
			password:     "abcdefgh1234",
			wantScore:    55,
			wantStrength: StrengthWeak,
		},
		{
			// tier 25 + lowercase 15 + entropy 5*16/16
			name:         "sixteen distinct lowercase",
			password:     "abcdefghijklmnop",
			wantScore:    45,
			wantStrength: StrengthWeak,
		},
		{
			// tier 10 + all four classes 65 + entropy 5*9/9
			name:         "nine chars all classes",
			password:     "Abcdef12!",
			wantScore:    80,
			wantStrength: StrengthStrong,
		},
		{
			// tier 30 + all four classes 65 + entropy 5*4/20
			name:         "long but repetitive all classes",
			password:     "Aa1!Aa1!Aa1!Aa1!Aa1!",
			wantScore:    96,
			wantStrength: StrengthStrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(tt.password, Requirements{})
			if report.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", report.Score, tt.wantScore)
			}
			if report.Strength != tt.wantStrength {
				t.Errorf("strength = %q, want %q", report.Strength, tt.wantStrength)
			}
		})
	}
}

func TestEvaluateScoreTopsOutAt100(t *testing.T) {
	// 25 distinct characters across all classes hits the maximum:
	// tier 30 + class bonuses 65 + entropy 5.
	report := Evaluate("Abcdefghijklmnopqrstu12!?", Requirements{})
	if report.Score != 100 {
		t.Errorf("score = %d, want 100", report.Score)
	}
	if report.Strength != StrengthStrong {
		t.Errorf("strength = %q, want %q", report.Strength, StrengthStrong)
	}
}

func TestEvaluateChecks(t *testing.T) {
	report := Evaluate("Abc123!x", Requirements{})

	if !report.Checks.HasUppercase {
		t.Error("expected has_uppercase")
	}
	if !report.Checks.HasLowercase {
		t.Error("expected has_lowercase")
	}
	if !report.Checks.HasNumbers {
		t.Error("expected has_numbers")
	}
	if !report.Checks.HasSymbols {
		t.Error("expected has_symbols")
	}
	if report.Checks.Length != 8 {
		t.Errorf("length = %d, want 8", report.Checks.Length)
	}
	if !report.Checks.MeetsMinLength {
		t.Error("8 characters should meet the default minimum of 8")
	}

	short := Evaluate("Abc123!", Requirements{})
	if short.Checks.MeetsMinLength {
		t.Error("7 characters should not meet the default minimum of 8")
	}
}

func TestEvaluateRequirementsFailing(t *testing.T) {
	// 10 characters, no symbol: both supplied requirements fail.
	report := Evaluate("abcdefghij", Requirements{
		MinLength:      intPtr(12),
		RequireSymbols: boolPtr(true),
	})

	if report.Passed {
		t.Error("passed should be false when a requirement fails")
	}
	if len(report.RequirementResults) != 2 {
		t.Fatalf("requirement results = %v, want 2 entries", report.RequirementResults)
	}
	if ok := report.RequirementResults[ReqMinLength]; ok {
		t.Error("min_length result should be false")
	}
	if ok := report.RequirementResults[ReqRequireSymbols]; ok {
		t.Error("require_symbols result should be false")
	}
}

func TestEvaluateRequirementsSatisfied(t *testing.T) {
	report := Evaluate("Abcdefgh12!x", Requirements{
		MinLength:        intPtr(12),
		RequireUppercase: boolPtr(true),
		RequireLowercase: boolPtr(true),
		RequireNumbers:   boolPtr(true),
		RequireSymbols:   boolPtr(true),
	})

	if !report.Passed {
		t.Errorf("passed should be true, results: %v", report.RequirementResults)
	}
	if len(report.RequirementResults) != 5 {
		t.Errorf("requirement results = %v, want 5 entries", report.RequirementResults)
	}
	for name, ok := range report.RequirementResults {
		if !ok {
			t.Errorf("requirement %q unexpectedly failed", name)
		}
	}
}

func TestEvaluateRequireFlagFalseIsWaived(t *testing.T) {
	// An explicitly disabled require flag behaves like an absent one.
	report := Evaluate("abcdefghij", Requirements{
		RequireSymbols: boolPtr(false),
	})

	if _, present := report.RequirementResults[ReqRequireSymbols]; present {
		t.Error("waived requirement should not appear in results")
	}
	if !report.Passed {
		t.Error("passed should be true with only waived requirements")
	}
}

func TestEvaluateAbsentRequirementsDoNotAffectPassed(t *testing.T) {
	// Only min_length supplied and satisfied; missing classes are not
	// judged.
	report := Evaluate("abcdefgh", Requirements{MinLength: intPtr(8)})

	if !report.Passed {
		t.Errorf("passed should be true, results: %v", report.RequirementResults)
	}
	if len(report.RequirementResults) != 1 {
		t.Errorf("requirement results = %v, want 1 entry", report.RequirementResults)
	}
}

func TestEvaluateScoreMonotonicWhenAddingClass(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
	}{
		{"add digit", "abcdefgh", "abcdefgh1"},
		{"add lowercase", "AAAA", "AAAa"},
		{"add symbol", "abcdef12", "abcdef12!"},
		{"add uppercase", "abcdef12!", "Aabcdef12!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Evaluate(tt.before, Requirements{}).Score
			after := Evaluate(tt.after, Requirements{}).Score
			if after < before {
				t.Errorf("score decreased from %d to %d after adding a class", before, after)
			}
		})
	}
}

func TestStrengthLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, StrengthVeryWeak},
		{39, StrengthVeryWeak},
		{40, StrengthWeak},
		{59, StrengthWeak},
		{60, StrengthModerate},
		{79, StrengthModerate},
		{80, StrengthStrong},
		{100, StrengthStrong},
	}

	for _, tt := range tests {
		if got := strengthLabel(tt.score); got != tt.want {
			t.Errorf("strengthLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
