package dto

// FiltersRequest carries the filter widget values. Empty type and
// statistic mean "any" and "percentage".
type FiltersRequest struct {
	VolunteeringType string `json:"volunteering_type" query:"volunteering_type"`
	Statistic        string `json:"statistic" query:"statistic"`
	Year             int    `json:"year" query:"year" validate:"required"`
	Demographic      string `json:"demographic" query:"demographic"`
}

type EventRequest struct {
	Trigger string `json:"trigger" validate:"required,oneof=reset region_clicked filter_changed"`
	Region  string `json:"region"`
	FiltersRequest
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	Views     *Views `json:"views"`
}

type StateResponse struct {
	SelectedRegion string `json:"selected_region"`
}

type ResolveResponse struct {
	VolunteeringType string `json:"volunteering_type"`
	Statistic        string `json:"statistic"`
	Column           string `json:"column"`
}

type MetaResponse struct {
	Years             []int    `json:"years"`
	Regions           []string `json:"regions"`
	DefaultRegion     string   `json:"default_region"`
	VolunteeringTypes []string `json:"volunteering_types"`
	Statistics        []string `json:"statistics"`
	DemographicGroups []string `json:"demographic_groups"`
}
