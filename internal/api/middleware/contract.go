package middleware

import "time"

type Logger interface {
	Info(format string, v ...interface{})
}

// HTTPObserver принимает сведения о завершенных запросах
type HTTPObserver interface {
	ObserveHTTPRequest(method, route, status string, duration time.Duration)
}
