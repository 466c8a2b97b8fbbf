package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	nkerrors "github.com/randalmurphal/notifykit/errors"
)

// Manifest declares the custom-state groups a hub builds.
type Manifest struct {
	Groups []GroupSpec `yaml:"groups" validate:"min=1,unique=Name,dive"`
}

// GroupSpec declares one group: its member keys and the state set shared by
// every member. Repeated keys are left to the duplicate_keys policy.
type GroupSpec struct {
	Name   string   `yaml:"name" validate:"required"`
	Keys   []string `yaml:"keys" validate:"min=1,dive,required"`
	States []string `yaml:"states" validate:"min=1,unique,dive,required"`
}

// Names returns the group names in declaration order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Groups))
	for i, g := range m.Groups {
		names[i] = g.Name
	}
	return names
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func manifestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := parseManifest(data)
	if err != nil {
		return nil, nkerrors.WrapManifestError(err, path)
	}
	return m, nil
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	m, err := parseManifest(data)
	if err != nil {
		return nil, nkerrors.WrapManifestError(err, "<inline>")
	}
	return m, nil
}

func parseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest against its field rules.
func (m *Manifest) Validate() error {
	err := manifestValidator().Struct(m)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Manifest.")

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "unique":
		if fe.Param() != "" {
			return fmt.Sprintf("%s has a repeated %s", field, strings.ToLower(fe.Param()))
		}
		return field + " has repeated entries"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
