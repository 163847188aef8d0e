package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the config for:
//   - struct tag constraints (version, worker counts, store backend)
//   - empty keys in the lexicon tables
//   - keys that differ only by case, which would shadow each other
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	var errs []string

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("config: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, formatFieldError(fe))
		}
	}

	validateTable("lexicon.items", cfg.Lexicon.Items, &errs)
	validateTable("lexicon.locations", cfg.Lexicon.Locations, &errs)
	validateTable("lexicon.types", cfg.Lexicon.Types, &errs)

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateTable(name string, table map[string]string, errs *[]string) {
	seen := make(map[string]string, len(table))
	for k := range table {
		if strings.TrimSpace(k) == "" {
			*errs = append(*errs, fmt.Sprintf("%s: empty key", name))
			continue
		}
		lk := strings.ToLower(k)
		if prev, ok := seen[lk]; ok {
			*errs = append(*errs, fmt.Sprintf("%s: duplicate key %q (also %q)", name, k, prev))
			continue
		}
		seen[lk] = k
	}
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
