package models

import "encoding/json"

// Project is a hiring-need record loaded from the projects dataset.
// ArchitectureStack, DataModelAndPipeline and PromptEngineering are
// free-form JSON documents; the rule-based scorer folds their raw text
// into the project text blob, matching how the data is authored.
type Project struct {
	Name                 string          `json:"project_name"`
	Description          string          `json:"Description"`
	CoreFeatures         []string        `json:"core_features"`
	ArchitectureStack    json.RawMessage `json:"architecture_stack,omitempty"`
	DataModelAndPipeline json.RawMessage `json:"data_model_and_pipeline,omitempty"`
	APIEndpoints         []string        `json:"api_endpoints,omitempty"`
	PromptEngineering    json.RawMessage `json:"prompt_engineering,omitempty"`
	AcceptanceCriteria   []string        `json:"acceptance_criteria"`
	Notes                string          `json:"notes"`
}
