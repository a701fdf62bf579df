package suggest_alternatives

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	suggestAlternatives "github.com/m04kA/SMC-ScheduleService/internal/usecase/suggest_alternatives"
)

// SuggestAlternativesRequest HTTP request model
type SuggestAlternativesRequest struct {
	DesiredStart  string   `json:"desiredStart"` // RFC3339 или YYYY-MM-DDTHH:MM
	DurationHours *float64 `json:"durationHours,omitempty"`
	ExcludeJobID  *string  `json:"excludeJobId,omitempty"`
	MaxDays       *int     `json:"maxDays,omitempty"`
	MaxResults    *int     `json:"maxResults,omitempty"`
}

// SuggestAlternativesResponse HTTP response model
type SuggestAlternativesResponse struct {
	HandymanID  string       `json:"handymanId"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestion альтернативная дата начала заказа
type Suggestion struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Label     string `json:"label"`
	DayOfWeek string `json:"dayOfWeek"`
}

// Defaults значения по умолчанию из конфигурации сервиса
type Defaults struct {
	MaxDays    int
	MaxResults int
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Не переданные maxDays и maxResults заполняются из defaults
func (r *SuggestAlternativesRequest) ToUseCaseRequest(handymanID string, defaults Defaults, loc *time.Location) (*suggestAlternatives.Request, error) {
	desired, err := handlers.ParseDateTime(r.DesiredStart, loc)
	if err != nil {
		return nil, err
	}

	req := &suggestAlternatives.Request{
		HandymanID:    handymanID,
		DesiredStart:  desired,
		DurationHours: r.DurationHours,
		ExcludeJobID:  r.ExcludeJobID,
		MaxDays:       r.MaxDays,
		MaxResults:    r.MaxResults,
	}

	if req.MaxDays == nil && defaults.MaxDays > 0 {
		maxDays := defaults.MaxDays
		req.MaxDays = &maxDays
	}
	if req.MaxResults == nil && defaults.MaxResults > 0 {
		maxResults := defaults.MaxResults
		req.MaxResults = &maxResults
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestAlternatives.Response) *SuggestAlternativesResponse {
	suggestions := make([]Suggestion, len(resp.Suggestions))
	for i, s := range resp.Suggestions {
		suggestions[i] = Suggestion{
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: handlers.FormatDateTime(s.Date),
			Label:     s.Label,
			DayOfWeek: s.DayOfWeek,
		}
	}

	return &SuggestAlternativesResponse{
		HandymanID:  resp.HandymanID,
		Suggestions: suggestions,
	}
}
