package service

// MetricsRecorder receives domain counters from the use cases.
type MetricsRecorder interface {
	CourseWritten(operation string)
	UserRegistered(kind string)
	EventPublished(eventType EventType, success bool)
	CacheLookup(hit bool)
}
