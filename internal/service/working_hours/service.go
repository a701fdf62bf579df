package working_hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/working_hours/models"
)

const (
	opGetWorkingHours    = "GetWorkingHours"
	opUpdateWorkingHours = "UpdateWorkingHours"
)

// Service сервис для работы с рабочими часами мастера
type Service struct {
	repo   WorkingHoursRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(repo WorkingHoursRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get получает рабочие часы мастера
// Если мастер их не настраивал, возвращаются значения по умолчанию с IsDefault=true
func (s *Service) Get(ctx context.Context, handymanID string) (*models.WorkingHoursResponse, error) {
	s.logger.Info("Get: fetching working hours for handyman=%s", handymanID)

	if handymanID == "" {
		return nil, fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}

	policy, isDefault, err := s.load(ctx, handymanID)
	if err != nil {
		s.logger.Error("Get: repository error for handyman=%s: %v", handymanID, err)
		return nil, domain.StoreUnavailable(opGetWorkingHours, handymanID, err)
	}

	return models.FromDomainPolicy(handymanID, policy, isDefault), nil
}

// Update обновляет рабочие часы мастера
// Доступно только самому мастеру
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("Update: updating working hours for handyman=%s by user=%s", req.HandymanID, req.UserID)

	// 1. Проверяем входные данные
	if req.HandymanID == "" {
		return nil, fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for handyman=%s", req.HandymanID)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	// 2. Проверяем права доступа (только сам мастер)
	if req.UserID != req.HandymanID {
		s.logger.Warn("Update: user=%s is not allowed to change handyman=%s", req.UserID, req.HandymanID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем текущую политику (или значения по умолчанию)
	policy, _, err := s.load(ctx, req.HandymanID)
	if err != nil {
		s.logger.Error("Update: repository error for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opUpdateWorkingHours, req.HandymanID, err)
	}

	// 4. Применяем обновления и валидируем результат
	req.ApplyToPolicy(&policy)
	policy = policy.Normalized()

	if err := policy.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for handyman=%s: %v", req.HandymanID, err)
		return nil, err
	}

	// 5. Сохраняем
	if err := s.repo.SetWorkingHours(ctx, req.HandymanID, policy); err != nil {
		s.logger.Error("Update: repository error for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opUpdateWorkingHours, req.HandymanID, err)
	}

	s.logger.Info("Update: successfully updated working hours for handyman=%s: %d-%d, daysOff=%v",
		req.HandymanID, policy.StartHour, policy.EndHour, policy.DaysOff)
	return models.FromDomainPolicy(req.HandymanID, policy, false), nil
}

// load возвращает сохранённую политику или политику по умолчанию
func (s *Service) load(ctx context.Context, handymanID string) (domain.WorkingHoursPolicy, bool, error) {
	stored, err := s.repo.GetWorkingHours(ctx, handymanID)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			return domain.DefaultWorkingHoursPolicy(), true, nil
		}
		return domain.WorkingHoursPolicy{}, false, err
	}
	return *stored, false, nil
}
