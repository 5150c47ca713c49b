package model

// StrengthRequest represents a strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// ValidationRules mirrors the optional rule set accepted by the validate
// endpoint. Absent fields mean the rule is not enforced.
type ValidationRules struct {
	MinLength      int  `json:"min_length,omitempty"`
	RequireUpper   bool `json:"require_upper,omitempty"`
	RequireLower   bool `json:"require_lower,omitempty"`
	RequireDigit   bool `json:"require_digit,omitempty"`
	RequireSpecial bool `json:"require_special,omitempty"`
}

// ValidateRequest represents a rule validation request.
type ValidateRequest struct {
	Password string          `json:"password"`
	Rules    ValidationRules `json:"rules"`
}

// ValidateResponse reports validation outcome. Errors is always present,
// possibly empty, in fixed rule-check order.
type ValidateResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// HashRequest represents a hash request. An empty algorithm selects the
// default.
type HashRequest struct {
	Password  string `json:"password"`
	Algorithm string `json:"algorithm,omitempty"`
}

// HashResponse carries the hexadecimal digest.
type HashResponse struct {
	Hash string `json:"hash"`
}
