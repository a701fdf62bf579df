package working_hours

import "github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
