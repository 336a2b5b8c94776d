package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dentist-dashboard/internal/domain/entity"
)

// ErrMalformedAnalysis marks an analysis payload that is present but cannot
// be decoded. It never escapes projection; the patient is shown without an
// analysis instead.
var ErrMalformedAnalysis = errors.New("malformed analysis result")

// ParseAnalysisResult decodes the stored analysis payload.
// A nil, blank or JSON null payload means no analysis and returns (nil, nil),
// as does an object carrying neither a score nor analysis text.
// The payload may also arrive as a JSON string wrapping the object.
func ParseAnalysisResult(raw *string) (*entity.AnalysisResult, error) {
	if raw == nil {
		return nil, nil
	}
	payload := []byte(strings.TrimSpace(*raw))
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil, nil
	}

	if payload[0] == '"' {
		var inner string
		if err := json.Unmarshal(payload, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
		}
		return ParseAnalysisResult(&inner)
	}

	if payload[0] != '{' {
		return nil, fmt.Errorf("%w: expected object", ErrMalformedAnalysis)
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if !result.Score.Valid && strings.TrimSpace(result.Analysis) == "" {
		return nil, nil
	}
	if result.Causes == nil {
		result.Causes = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return &result, nil
}
