package handlers

import (
	"math"
	"strconv"
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateLogin(req LoginRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, ValidationError{Field: "username", Description: "Username is required"})
	}
	if req.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Description: "Password is required"})
	}
	return errs
}

// parseThreshold reads an alert threshold percentage; empty means def.
func parseThreshold(raw string, def float64) (float64, []ValidationError) {
	if raw == "" {
		return def, nil
	}
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, []ValidationError{{Field: "threshold", Description: "Threshold must be a number"}}
	}
	if t < 0 {
		return 0, []ValidationError{{Field: "threshold", Description: "Threshold cannot be negative"}}
	}
	return t, nil
}
