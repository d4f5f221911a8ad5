package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware gives every huma operation its own LogData and writes one
// line per request named after the operation ID.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := "Unknown"
		if op := ctx.Operation(); op != nil {
			loggingName = op.OperationID
		}

		logData := NewLogData(log)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
