package suggest_alternatives

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const opSuggestAlternatives = "SuggestAlternatives"

// UseCase use case подбора альтернативных дат для заказа, пересекающегося с расписанием
type UseCase struct {
	checker      ConflictChecker
	policyRepo   WorkingHoursRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	checker ConflictChecker,
	policyRepo WorkingHoursRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		checker:      checker,
		policyRepo:   policyRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case подбора альтернатив
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestAlternatives: handyman=%s, desiredStart=%s",
		req.HandymanID, req.DesiredStart.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestAlternatives: validation failed: %v", err)
		return nil, err
	}
	params := resolveParams(req)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем рабочие часы мастера
	stored, err := uc.policyRepo.GetWorkingHours(ctx, req.HandymanID)
	if err != nil && !errors.Is(err, domain.ErrPolicyNotFound) {
		uc.logger.Error("SuggestAlternatives: failed to get working hours for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opSuggestAlternatives, req.HandymanID, err)
	}
	policy := domain.PolicyOrDefault(stored)

	// 4. Ищем свободные даты
	dates, err := uc.search(ctx, req.HandymanID, req.DesiredStart, params, policy, now)
	if err != nil {
		uc.logger.Error("SuggestAlternatives: search failed for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.NewOperationError(opSuggestAlternatives, req.HandymanID, err)
	}

	// 5. Формируем подписи
	suggestions := make([]domain.AlternativeSuggestion, 0, len(dates))
	for _, d := range dates {
		suggestions = append(suggestions, newSuggestion(d, now))
	}

	uc.logger.Info("SuggestAlternatives: found %d alternatives for handyman=%s (maxDays=%d, maxResults=%d)",
		len(suggestions), req.HandymanID, params.maxDays, params.maxResults)

	return &Response{
		HandymanID:  req.HandymanID,
		Suggestions: suggestions,
	}, nil
}
