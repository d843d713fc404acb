package domain

import "strings"

// Invocation holds the parsed command-line inputs for a single clone
type Invocation struct {
	KeyName        string
	SourceURL      string
	DestinationDir string // empty when omitted
}

// Validate checks the required fields
func (i Invocation) Validate() error {
	if strings.TrimSpace(i.KeyName) == "" {
		return NewValidationError("ssh", "key name is required")
	}
	if strings.TrimSpace(i.SourceURL) == "" {
		return NewValidationError("url", "repository URL is required")
	}
	return nil
}
