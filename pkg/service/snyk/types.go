package snyk

// JSON:API envelope shared by the paginated list endpoints. Each page
// carries a data array and, while more pages remain, a links.next URL
// whose query string holds the cursor for the following request.
type listResponse struct {
	Data  []resource `json:"data"`
	Links pageLinks  `json:"links"`
}

type pageLinks struct {
	Next string `json:"next"`
}

type resource struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Attributes    resourceAttributes `json:"attributes"`
	Relationships relationships      `json:"relationships"`
}

type resourceAttributes struct {
	// Project records
	Name string `json:"name"`

	// Issue records
	EffectiveSeverityLevel string `json:"effective_severity_level"`
}

type relationships struct {
	ScanItem *relationship `json:"scan_item"`
}

type relationship struct {
	Data relationshipData `json:"data"`
}

type relationshipData struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}
