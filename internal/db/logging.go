package db

import (
	"go.uber.org/zap"
)

// NewZapInvoker returns a LoggedQuery that executes through the adapter's
// own query path and logs every statement with its elapsed time.
func NewZapInvoker(logger *zap.Logger, a *Adapter) LoggedQuery {
	return func(sql string) (*Result, error) {
		res, err := a.Query(sql)
		fields := []zap.Field{
			zap.String("sql", sql),
			zap.Float64("elapsed_s", a.QueryElapsedTime()),
		}
		if err != nil {
			logger.Error("query failed", append(fields, zap.Error(err))...)
			return nil, err
		}
		logger.Debug("query", fields...)
		return res, nil
	}
}
