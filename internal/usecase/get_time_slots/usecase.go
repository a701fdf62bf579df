package get_time_slots

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const opGetTimeSlots = "GetAvailableTimeSlots"

// UseCase use case получения слотов фиксированной длины на конкретный день
type UseCase struct {
	jobRepo    JobRepository
	policyRepo WorkingHoursRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(jobRepo JobRepository, policyRepo WorkingHoursRepository, logger Logger) *UseCase {
	return &UseCase{
		jobRepo:    jobRepo,
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimeSlots: handyman=%s, date=%s",
		req.HandymanID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimeSlots: validation failed: %v", err)
		return nil, err
	}

	day := domain.StartOfDay(req.Date)
	slotHours := ptr.Value(req.SlotHours, domain.DefaultSlotHours)

	// 2. Получаем рабочие часы мастера
	stored, err := uc.policyRepo.GetWorkingHours(ctx, req.HandymanID)
	if err != nil && !errors.Is(err, domain.ErrPolicyNotFound) {
		uc.logger.Error("GetAvailableTimeSlots: failed to get working hours for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opGetTimeSlots, req.HandymanID, err)
	}
	policy := domain.PolicyOrDefault(stored)

	resp := &Response{
		HandymanID: req.HandymanID,
		Date:       day,
		SlotHours:  slotHours,
		Slots:      []domain.TimeSlot{},
	}

	// 3. Выходной день - слотов нет
	if policy.IsDayOff(day) {
		uc.logger.Info("GetAvailableTimeSlots: %s is a day off for handyman=%s",
			day.Format(domain.DateFormat), req.HandymanID)
		resp.DayOff = true
		return resp, nil
	}

	// 4. Получаем заказы, начавшиеся до конца дня
	// Нижней границы нет: многодневный заказ мог начаться сколь угодно раньше,
	// лишние заказы отсекает проверка пересечения в markAvailability
	working := policy.WorkingWindow(day)
	to := day.AddDate(0, 0, 1)

	jobs, err := uc.jobRepo.QueryJobs(ctx, domain.OccupyingJobsFilter(req.HandymanID, nil, &to))
	if err != nil {
		uc.logger.Error("GetAvailableTimeSlots: failed to query jobs for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opGetTimeSlots, req.HandymanID, err)
	}

	// 5. Генерируем слоты и вычисляем их доступность
	slots := generateTimeSlots(working, domain.HoursToDuration(slotHours))
	resp.Slots = markAvailability(slots, jobs)

	uc.logger.Info("GetAvailableTimeSlots: generated %d slots for handyman=%s, date=%s",
		len(resp.Slots), req.HandymanID, day.Format(domain.DateFormat))

	return resp, nil
}
