package suggest_alternatives

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// candidateCheck результат проверки одной даты-кандидата
type candidateCheck struct {
	start time.Time
	free  bool
}

// search выполняет двунаправленный поиск свободных дат
//
// Для offset = 1..maxDays сначала проверяется дата desiredStart+offset (вперёд),
// затем desiredStart-offset (назад). Даты не позже now и выходные пропускаются.
// Обе проверки одного offset выполняются параллельно, но результаты собираются
// в порядке "вперёд, затем назад", поэтому свободная дата назад на том же offset
// никогда не вытесняет дату вперёд. Поиск останавливается после maxResults найденных дат.
func (uc *UseCase) search(
	ctx context.Context,
	handymanID string,
	desiredStart time.Time,
	params searchParams,
	policy domain.WorkingHoursPolicy,
	now time.Time,
) ([]time.Time, error) {
	found := make([]time.Time, 0, params.maxResults)
	duration := domain.HoursToDuration(params.durationHours)

	for offset := 1; offset <= params.maxDays && len(found) < params.maxResults; offset++ {
		forward := desiredStart.AddDate(0, 0, offset)
		backward := desiredStart.AddDate(0, 0, -offset)

		checks := [2]candidateCheck{{start: forward}, {start: backward}}

		g, gCtx := errgroup.WithContext(ctx)
		for i := range checks {
			c := &checks[i]

			if policy.IsDayOff(c.start) {
				continue
			}
			// Прошедшие даты не предлагаются
			if !c.start.After(now) {
				continue
			}

			g.Go(func() error {
				window := domain.TimeWindow{Start: c.start, End: c.start.Add(duration)}
				result, err := uc.checker.Check(gCtx, handymanID, window, params.excludeJobID)
				if err != nil {
					return err
				}
				c.free = !result.HasConflict
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, c := range checks {
			if c.free && len(found) < params.maxResults {
				found = append(found, c.start)
			}
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Before(found[j]) })

	return found, nil
}
