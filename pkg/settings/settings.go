// Package settings holds the user-facing options of the sidebar as an
// immutable value, and persists them in a small disk-backed key-value store.
package settings

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultFilePath is where lists are kept when nothing else is configured,
// relative to the vault root.
const DefaultFilePath = "list-sidebar-data.md"

// Settings are never mutated in place. The With* helpers return a changed
// copy so every consumer holds the value it was constructed with.
type Settings struct {
	FilePath            string `json:"filePath" validate:"required,vaultpath"`
	ShowDividers        bool   `json:"showDividers"`
	AlternateBackground bool   `json:"alternateBackground"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		FilePath:            DefaultFilePath,
		ShowDividers:        true,
		AlternateBackground: true,
	}
}

// WithFilePath returns a copy pointing at another backing file.
func (s Settings) WithFilePath(p string) Settings {
	s.FilePath = strings.TrimSpace(p)
	return s
}

// WithShowDividers returns a copy with item dividers toggled.
func (s Settings) WithShowDividers(v bool) Settings {
	s.ShowDividers = v
	return s
}

// WithAlternateBackground returns a copy with row shading toggled.
func (s Settings) WithAlternateBackground(v bool) Settings {
	s.AlternateBackground = v
	return s
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Backing files live inside the vault and are markdown.
	_ = v.RegisterValidation("vaultpath", func(fl validator.FieldLevel) bool {
		p := fl.Field().String()
		if strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) {
			return false
		}
		clean := path.Clean(strings.ReplaceAll(p, `\`, "/"))
		if clean == ".." || strings.HasPrefix(clean, "../") {
			return false
		}
		return strings.HasSuffix(strings.ToLower(clean), ".md")
	})
	return v
}

// Validate checks the settings before they are stored or used.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			switch fe.Tag() {
			case "required":
				return fmt.Errorf("settings: %s is required", strings.ToLower(fe.Field()[:1])+fe.Field()[1:])
			case "vaultpath":
				return fmt.Errorf("settings: filePath %q must be a relative .md path inside the vault", s.FilePath)
			}
		}
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// Keys lists the recognised option names, in display order.
func Keys() []string {
	return []string{"filePath", "showDividers", "alternateBackground"}
}

// Get returns the string form of one option.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "filePath":
		return s.FilePath, nil
	case "showDividers":
		return fmt.Sprintf("%t", s.ShowDividers), nil
	case "alternateBackground":
		return fmt.Sprintf("%t", s.AlternateBackground), nil
	}
	return "", fmt.Errorf("settings: unknown option %q", key)
}

// Set returns a copy with one option parsed from its string form.
func (s Settings) Set(key, value string) (Settings, error) {
	switch key {
	case "filePath":
		return s.WithFilePath(value), nil
	case "showDividers":
		b, err := parseBool(value)
		if err != nil {
			return s, err
		}
		return s.WithShowDividers(b), nil
	case "alternateBackground":
		b, err := parseBool(value)
		if err != nil {
			return s, err
		}
		return s.WithAlternateBackground(b), nil
	}
	return s, fmt.Errorf("settings: unknown option %q", key)
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("settings: %q is not a boolean", v)
}
