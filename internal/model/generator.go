package model

// GenerateRequest represents a password generation request. FlexBool
// fields accept loose boolean forms and track presence, so the service
// layer can apply documented defaults to anything unset.
type GenerateRequest struct {
	Length           int      `json:"length"`
	Uppercase        FlexBool `json:"uppercase"`
	Lowercase        FlexBool `json:"lowercase"`
	Numbers          FlexBool `json:"numbers"`
	Symbols          FlexBool `json:"symbols"`
	ExcludeAmbiguous FlexBool `json:"exclude_ambiguous"`
	ExcludeChars     string   `json:"exclude_chars"`
	RequireEach      FlexBool `json:"require_each"`
}

// BatchGenerateRequest represents a multi-password generation request.
type BatchGenerateRequest struct {
	GenerateRequest
	Count int `json:"count"`
}

// GeneratorSettings echoes the fully normalized options a password was
// generated with.
type GeneratorSettings struct {
	Length           int    `json:"length"`
	Uppercase        bool   `json:"uppercase"`
	Lowercase        bool   `json:"lowercase"`
	Numbers          bool   `json:"numbers"`
	Symbols          bool   `json:"symbols"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous"`
	ExcludeChars     string `json:"exclude_chars,omitempty"`
	RequireEach      bool   `json:"require_each"`
}

// GenerateResponse represents a single password generation response.
type GenerateResponse struct {
	Success  bool              `json:"success"`
	Password string            `json:"password"`
	Length   int               `json:"length"`
	Options  GeneratorSettings `json:"options"`
}

// BatchGenerateResponse represents a multi-password generation response.
type BatchGenerateResponse struct {
	Success   bool              `json:"success"`
	Passwords []string          `json:"passwords"`
	Count     int               `json:"count"`
	Options   GeneratorSettings `json:"options"`
}
