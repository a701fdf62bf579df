package health

import "context"

// StorePinger проверка доступности хранилища расписания
type StorePinger interface {
	Ping(ctx context.Context) error
}

// PingFunc адаптер функции к StorePinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
