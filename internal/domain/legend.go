package domain

// NameLegend is the persisted name-standardization table. Both maps are
// keyed by the uppercased raw name as it appears in the portal.
type NameLegend struct {
	Physicians map[string]string `json:"physicians"`
	MLPs       map[string]string `json:"mlps"`
}

type Site struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
