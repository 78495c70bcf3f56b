package model

import (
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
)

// Issue is one open issue record fetched from the source API. ScanItemID
// is the related project from the issue's scan_item relationship; it is
// empty when the issue carries no such relationship, in which case the
// issue cannot be attributed to a project and is dropped from aggregation.
type Issue struct {
	ScanItemID types.ProjectID
	Severity   Severity
}

// Attributable returns true if the issue can be correlated to a project
func (i Issue) Attributable() bool {
	return i.ScanItemID != ""
}
