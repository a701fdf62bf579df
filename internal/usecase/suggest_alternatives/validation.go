package suggest_alternatives

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// searchParams нормализованные параметры поиска
type searchParams struct {
	durationHours float64
	maxDays       int
	maxResults    int
	excludeJobID  string
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HandymanID == "" {
		return fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}

	if req.DesiredStart.IsZero() {
		return fmt.Errorf("%w: desiredStart is required", ErrInvalidInput)
	}

	if req.DurationHours != nil {
		if *req.DurationHours <= 0 || *req.DurationHours > domain.MaxJobDurationHours {
			return fmt.Errorf("%w: durationHours must be in (0, %.0f]", ErrInvalidInput, domain.MaxJobDurationHours)
		}
	}

	if req.MaxDays != nil && (*req.MaxDays < domain.MinSearchDays || *req.MaxDays > domain.MaxSearchDays) {
		return fmt.Errorf("%w: maxDays must be in %d..%d", ErrInvalidInput, domain.MinSearchDays, domain.MaxSearchDays)
	}

	return nil
}

// resolveParams подставляет значения по умолчанию
// maxResults ограничивается диапазоном [MinMaxSuggestions, MaxMaxSuggestions]
func resolveParams(req *Request) searchParams {
	maxResults := ptr.Value(req.MaxResults, domain.DefaultMaxSuggestions)
	if maxResults < domain.MinMaxSuggestions {
		maxResults = domain.MinMaxSuggestions
	}
	if maxResults > domain.MaxMaxSuggestions {
		maxResults = domain.MaxMaxSuggestions
	}

	return searchParams{
		durationHours: ptr.Value(req.DurationHours, domain.DefaultJobDurationHours),
		maxDays:       ptr.Value(req.MaxDays, domain.DefaultMaxSearchDays),
		maxResults:    maxResults,
		excludeJobID:  ptr.Value(req.ExcludeJobID, ""),
	}
}
