package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"sigs.k8s.io/yaml"

	eerrors "github.com/eardeploy/cli/internal/errors"
)

//go:embed schema.cue
var schemaCUE []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap classifies every collection as a validation failure.
func (e ValidationErrors) Unwrap() error {
	return eerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(schemaCUE)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate validates a decoded configuration.
func (v *Validator) Validate(cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	errs := append(v.validateJSON(data), checkValues(cfg)...)
	if len(errs) > 0 {
		return errs.dedupe()
	}
	return nil
}

// dedupe keeps the first error reported for each field.
func (e ValidationErrors) dedupe() ValidationErrors {
	seen := make(map[string]bool, len(e))
	out := make(ValidationErrors, 0, len(e))
	for _, err := range e {
		if seen[err.Field] {
			continue
		}
		seen[err.Field] = true
		out = append(out, err)
	}
	return out
}

// ValidateFile validates the raw document at path, including keys the
// Config struct would silently drop, and then the decoded configuration.
func (v *Validator) ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	data, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return ValidationErrors{{Field: "(file)", Message: err.Error()}}
	}
	if strings.TrimSpace(string(data)) == "null" {
		data = []byte("{}")
	}
	if errs := v.validateJSON(data); len(errs) > 0 {
		return errs
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	return v.Validate(cfg)
}

func (v *Validator) validateJSON(data []byte) ValidationErrors {
	value := v.ctx.CompileBytes(data)
	if value.Err() != nil {
		return ValidationErrors{{Field: "(file)", Message: value.Err().Error()}}
	}

	unified := v.schema.Unify(value)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range errors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	return errs
}

// checkValues applies the Go-side checks: the conflict mode set and paths
// that cannot be used as directories.
func checkValues(cfg *Config) ValidationErrors {
	var errs ValidationErrors
	switch cfg.Deploy.Conflict {
	case "", "ask", "overwrite", "skip":
	default:
		errs = append(errs, ValidationError{Field: "deploy.conflict", Message: "must be one of ask, overwrite, skip"})
	}

	fields := []struct {
		name  string
		value string
	}{
		{"catalina.home", cfg.Catalina.Home},
		{"catalina.base", cfg.Catalina.Base},
		{"catalina.deploy", cfg.Catalina.Deploy},
		{"deploy.libraryTarget", cfg.Deploy.LibraryTarget},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, ValidationError{Field: f.name, Message: "must not be whitespace only"})
			continue
		}
		expanded, err := ExpandPath(f.value)
		if err != nil {
			errs = append(errs, ValidationError{Field: f.name, Message: err.Error()})
			continue
		}
		if !filepath.IsAbs(expanded) {
			errs = append(errs, ValidationError{Field: f.name, Message: "must be an absolute path"})
		}
	}
	return errs
}
