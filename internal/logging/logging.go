package logging

import (
	"io"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// New builds the application logger. Production gets JSON output, everything
// else a coloured text formatter. Unknown levels fall back to info.
func New(level string, production bool, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)
	if production {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// RequestLogger logs one entry per request through log.
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"remote_ip":  v.RemoteIP,
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
}

// GormLogger routes gorm's statement log through log.
func GormLogger(log *logrus.Logger) gormlogger.Interface {
	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
