package types

import (
	"fmt"

	"github.com/google/uuid"
)

// OrgID represents a Snyk organization identifier
type OrgID string

// String returns the string representation
func (id OrgID) String() string {
	return string(id)
}

// ProjectID represents a Snyk project identifier
type ProjectID string

// String returns the string representation
func (id ProjectID) String() string {
	return string(id)
}

// ChannelID represents a Slack channel identifier or name
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// RunID represents a single report run identifier
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(fmt.Sprintf("run-%s", uuid.New().String()))
}

// RepoRef is a human-readable repository reference (e.g. "org/repo") used
// only to label the triggering automation in notifications
type RepoRef string

// String returns the string representation
func (r RepoRef) String() string {
	return string(r)
}
