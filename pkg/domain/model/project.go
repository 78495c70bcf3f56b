package model

import (
	"fmt"

	"github.com/secmon-lab/vulnreport/pkg/domain/types"
)

// PlaceholderProjectName is used when the API returns a project without a name
const PlaceholderProjectName = "(unnamed project)"

// Project is one project record fetched from the source API.
// Identity is ID; records are immutable once fetched.
type Project struct {
	ID   types.ProjectID
	Name string
}

// Catalog maps project IDs to display names. Built once per run from the
// fetched project list and read-only afterward.
type Catalog map[types.ProjectID]string

// BuildCatalog builds an ID to display-name lookup from fetched project
// records. Nameless projects get a fixed placeholder; duplicate IDs are
// overwritten silently (last write wins).
func BuildCatalog(projects []Project) Catalog {
	catalog := make(Catalog, len(projects))
	for _, p := range projects {
		name := p.Name
		if name == "" {
			name = PlaceholderProjectName
		}
		catalog[p.ID] = name
	}
	return catalog
}

// Resolve returns the display name for a project ID. Unknown IDs resolve
// to a synthesized placeholder embedding the ID, never an error.
func (c Catalog) Resolve(id types.ProjectID) string {
	if name, ok := c[id]; ok {
		return name
	}
	return fmt.Sprintf("unknown project (%s)", id)
}
