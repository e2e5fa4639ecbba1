package model

// StrengthRequirements are the optional caller-supplied rules in a
// strength evaluation request. Absent fields are not enforced.
type StrengthRequirements struct {
	MinLength        *int     `json:"min_length"`
	RequireUppercase FlexBool `json:"require_uppercase"`
	RequireLowercase FlexBool `json:"require_lowercase"`
	RequireNumbers   FlexBool `json:"require_numbers"`
	RequireSymbols   FlexBool `json:"require_symbols"`
}

// StrengthRequest represents a strength evaluation request. An empty
// password is legal input.
type StrengthRequest struct {
	Password     string                `json:"password"`
	Requirements *StrengthRequirements `json:"requirements"`
}

// StrengthChecks are the password facts included in a strength response.
type StrengthChecks struct {
	HasUppercase   bool `json:"has_uppercase"`
	HasLowercase   bool `json:"has_lowercase"`
	HasNumbers     bool `json:"has_numbers"`
	HasSymbols     bool `json:"has_symbols"`
	Length         int  `json:"length"`
	MeetsMinLength bool `json:"meets_min_length"`
}

// StrengthResponse represents a strength evaluation response.
type StrengthResponse struct {
	Success            bool            `json:"success"`
	Checks             StrengthChecks  `json:"checks"`
	RequirementResults map[string]bool `json:"requirement_results,omitempty"`
	Score              int             `json:"score"`
	Strength           string          `json:"strength"`
	Passed             bool            `json:"passed"`
}
