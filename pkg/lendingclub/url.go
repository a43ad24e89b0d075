package lendingclub

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultEndpoint is the base URL of the LendingClub investor API.
const DefaultEndpoint = "https://api.lendingclub.com/api/investor/v1"

var pathComponentPattern = regexp.MustCompile(`^[0-9A-Za-z_-]+$`)

// ValidatePathComponent reports whether component may be used as a single URL path segment.
func ValidatePathComponent(component string) error {
	if !pathComponentPattern.MatchString(component) {
		return &MalformedURLComponentError{Component: component}
	}

	return nil
}

// BuildURL joins endpoint and the string form of every component with "/".
// All components are validated before anything is joined, so a malformed
// component never yields a partial URL.
func BuildURL(endpoint string, components ...interface{}) (string, error) {
	parts := make([]string, 0, len(components)+1)
	parts = append(parts, endpoint)

	for _, component := range components {
		segment := fmt.Sprint(component)

		err := ValidatePathComponent(segment)
		if err != nil {
			return "", err
		}

		parts = append(parts, segment)
	}

	return strings.Join(parts, "/"), nil
}
