// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/makebyjordan/mbj/pkg/slug"
)

// SingletonSuffix is appended to the lowercased model name to form the fixed
// identifier of a singleton instance.
const SingletonSuffix = "_singleton"

// RouteConfig describes the API surface of one content type.
type RouteConfig struct {
	// Name is the model identifier. It is also the backing table name.
	Name string `json:"name" yaml:"name"`

	// APIPath is the kebab-case segment served under /api/.
	APIPath string `json:"apiPath" yaml:"apiPath"`

	// HasImage marks types that own exactly one managed image field.
	HasImage    bool   `json:"hasImage" yaml:"hasImage"`
	ImageFolder string `json:"imageFolder,omitempty" yaml:"imageFolder,omitempty"`
	ImageField  string `json:"imageField,omitempty" yaml:"imageField,omitempty"`

	// RequiredFields are checked in order on create; the first missing one fails.
	RequiredFields []string `json:"requiredFields" yaml:"requiredFields"`

	// Singleton types have one instance addressed by [RouteConfig.SingletonID].
	Singleton bool `json:"singleton" yaml:"singleton"`
}

// SingletonID returns the fixed identifier of the type's single instance.
func (route RouteConfig) SingletonID() string {
	return strings.ToLower(route.Name) + SingletonSuffix
}

// Validate checks a single entry. Uniqueness across entries is checked by [New].
func (route RouteConfig) Validate() error {
	var errs []error

	if route.Name == "" {
		errs = append(errs, errors.New("name is required"))
	} else if !isPascal(route.Name) {
		errs = append(errs, fmt.Errorf("name %q must be PascalCase", route.Name))
	}

	if !slug.IsKebab(route.APIPath) {
		errs = append(errs, fmt.Errorf("apiPath %q must be kebab-case", route.APIPath))
	}

	if route.HasImage {
		if route.ImageFolder == "" {
			errs = append(errs, errors.New("imageFolder is required when hasImage is set"))
		}
		if route.ImageField == "" {
			errs = append(errs, errors.New("imageField is required when hasImage is set"))
		}
		if route.ImageFolder != "" && !slug.IsKebab(route.ImageFolder) {
			errs = append(errs, fmt.Errorf("imageFolder %q must be a kebab-case path segment", route.ImageFolder))
		}
	} else if route.ImageFolder != "" || route.ImageField != "" {
		errs = append(errs, errors.New("imageFolder and imageField require hasImage"))
	}

	if route.Singleton && len(route.RequiredFields) > 0 {
		errs = append(errs, errors.New("singleton routes cannot declare requiredFields"))
	}

	seen := make(map[string]bool, len(route.RequiredFields))
	for _, field := range route.RequiredFields {
		if strings.TrimSpace(field) == "" {
			errs = append(errs, errors.New("requiredFields cannot contain blank names"))
			continue
		}
		if seen[field] {
			errs = append(errs, fmt.Errorf("required field %q is listed twice", field))
		}
		seen[field] = true
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("route %q: %w", route.Name, errors.Join(errs...))
}

func isPascal(name string) bool {
	for index, char := range name {
		if index == 0 && !unicode.IsUpper(char) {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) {
			return false
		}
	}
	return true
}
