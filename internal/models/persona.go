package models

// Persona is a candidate record loaded from the personas dataset. It is
// read-only input to matching and is never mutated.
type Persona struct {
	ID          string      `json:"id"`
	FullName    string      `json:"full_name"`
	Resume      Resume      `json:"resume"`
	Application Application `json:"application"`
	Survey      Survey      `json:"survey"`
}

// Resume carries the skill and domain data the rule-based scorer works on.
type Resume struct {
	Headline    string   `json:"headline"`
	CurrentRole string   `json:"current_role"`
	Skills      []string `json:"skills"`
	Domains     []string `json:"domains"`
}

// Application holds the persona's stated preferences.
type Application struct {
	TargetRoles        []string `json:"target_roles"`
	PreferredLocations []string `json:"preferred_locations"`
}

// Survey is a list of free-form question/answer pairs.
type Survey struct {
	Responses []SurveyResponse `json:"responses"`
}

type SurveyResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
