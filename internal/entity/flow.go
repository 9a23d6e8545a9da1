package entity

import (
	"time"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

// FlowStepResult records one stage of a company's end-to-end flow.
type FlowStepResult struct {
	Step      constants.FlowStep `json:"step"`
	Success   bool               `json:"success"`
	Duration  time.Duration      `json:"duration_ns"`
	Processed int                `json:"processed"`
	Errors    []string           `json:"errors,omitempty"`
}

// FlowResult is the whole flow for one company.
type FlowResult struct {
	Empresa    constants.Company `json:"empresa"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Success    bool              `json:"success"`
	Steps      []FlowStepResult  `json:"steps"`
}
