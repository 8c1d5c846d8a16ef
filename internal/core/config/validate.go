package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/colonyops/toast/internal/core/styles"
)

// FieldError is a single invalid configuration value.
type FieldError struct {
	Field string `json:"field"`           // yaml path, e.g. "toast.width"
	Rule  string `json:"rule"`            // failed rule, e.g. "min"
	Param string `json:"param,omitempty"` // rule parameter, e.g. "20"
}

func (e FieldError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s: is required", e.Field)
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", e.Field, e.Param)
	case "theme":
		return fmt.Sprintf("%s: unknown theme (available: %s)", e.Field, strings.Join(styles.ThemeNames(), ", "))
	case "file":
		return fmt.Sprintf("%s: %s", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s: must satisfy %s=%s", e.Field, e.Rule, e.Param)
	}
}

// FieldErrors collects every invalid value found in one validation pass.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report yaml keys instead of Go field names.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return slices.Contains(styles.ThemeNames(), fl.Field().String())
		})
	})
	return validate
}

// Validate checks that the configuration is structurally valid. All problems
// are reported together as FieldErrors.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Config.toast.width"; drop the root type name.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		out = append(out, FieldError{Field: field, Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// ValidateDeep runs Validate and additionally checks that configPath, when
// it exists, is a regular file. An empty configPath skips the file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return validateConfigFile(configPath)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return FieldErrors{{Field: "config_file", Rule: "file", Param: fmt.Sprintf("cannot access: %v", err)}}
	}
	if info.IsDir() {
		return FieldErrors{{Field: "config_file", Rule: "file", Param: configPath + " is a directory, not a file"}}
	}
	return nil
}
