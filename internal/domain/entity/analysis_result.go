package entity

import "github.com/shopspring/decimal"

// AnalysisResult is the structured output of the gum-health image analysis.
// It is produced upstream and only ever read here. Score is invalid when the
// producer did not emit one.
type AnalysisResult struct {
	Score       decimal.NullDecimal `json:"score"`
	Analysis    string              `json:"analysis"`
	Causes      []string            `json:"causes"`
	Suggestions []string            `json:"suggestions"`
}
