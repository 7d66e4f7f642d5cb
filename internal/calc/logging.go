package calc

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// loggingEvaluator decorates an Evaluator with logging
type loggingEvaluator struct {
	logger log.Logger
	next   Evaluator
}

// NewLoggingEvaluator returns a new instance of a logging Evaluator.
// Successful evaluations are logged at debug level, failures at error level.
func NewLoggingEvaluator(logger log.Logger, next Evaluator) Evaluator {
	return &loggingEvaluator{
		next:   next,
		logger: logger,
	}
}

func (s *loggingEvaluator) Eval(e Expr) (result any, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Error(s.logger)
		}
		logger.Log(
			"method", "eval",
			"expr", e,
			"result", result,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Eval(e)
}
