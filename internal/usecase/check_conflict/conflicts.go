package check_conflict

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// findConflicts возвращает заказы, пересекающиеся с окном candidate
//
// - заказ с ID == excludeJobID пропускается (повторная проверка при редактировании этого же заказа)
// - заказ без времени начала пропускается без ошибки
// - конец заказа без явного endTime вычисляется из длительности
// - пересечение строгое (полуинтервалы), заказ, заканчивающийся в момент начала окна, не конфликтует
//
// Порядок результата совпадает с порядком заказов из хранилища
// Некорректное окно кандидата возвращает domain.ErrInvalidWindow
func findConflicts(candidate domain.TimeWindow, jobs []*domain.CommittedJob, excludeJobID string) (*domain.ConflictResult, error) {
	conflicting := make([]*domain.CommittedJob, 0)

	for _, job := range jobs {
		if excludeJobID != "" && job.ID == excludeJobID {
			continue
		}

		jobWindow, ok := job.EffectiveWindow()
		if !ok {
			continue
		}

		overlaps, err := domain.CheckOverlap(candidate, jobWindow)
		if err != nil {
			return nil, err
		}
		if overlaps {
			conflicting = append(conflicting, job)
		}
	}

	return &domain.ConflictResult{
		HasConflict:     len(conflicting) > 0,
		ConflictingJobs: conflicting,
	}, nil
}
