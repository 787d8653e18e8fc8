package runner

import (
	"context"

	"go.uber.org/zap"
)

type logWrapper[R any] struct {
	id   string
	name string
	next Operation[R]
}

func withLogging[R any](id, name string, op Operation[R]) Operation[R] {
	l := &logWrapper[R]{
		id:   id,
		name: name,
		next: op,
	}
	return l.run
}

func (l *logWrapper[R]) run(ctx context.Context) (R, error) {
	zap.S().Debugw("operation started", "id", l.id, "operation", l.name)

	value, err := l.next(ctx)
	if err != nil {
		zap.S().Infow("operation rejected", "id", l.id, "operation", l.name, "error", err)
		return value, err
	}

	zap.S().Infow("operation fulfilled", "id", l.id, "operation", l.name)
	return value, nil
}
