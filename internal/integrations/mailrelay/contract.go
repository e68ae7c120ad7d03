package mailrelay

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DispatchRecorder учет попыток отправки писем (реализуется pkg/metrics)
type DispatchRecorder interface {
	RecordEmailDispatch(recipient, outcome string)
}
