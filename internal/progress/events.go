// Package progress defines the event protocol the wipe engine reports
// through: one self-contained record per event, emitted atomically on a
// single output channel. A GUI host consumes the JSON form; the console
// form renders the same events for humans.
package progress

// StartEvent opens a wipe session.
type StartEvent struct {
	Type          string `json:"type"`
	Algorithm     string `json:"algorithm"`
	TotalPasses   int    `json:"total_passes"`
	FileSizeBytes uint64 `json:"file_size_bytes"`
	BufferSizeKB  int    `json:"buffer_size_kb"`
}

// PassStartEvent marks the beginning of one overwrite pass.
type PassStartEvent struct {
	Type        string `json:"type"`
	Pass        int    `json:"pass"`
	TotalPasses int    `json:"total_passes"`
	Pattern     string `json:"pattern"`
}

// ProgressEvent reports throttled in-pass progress. BytesPerSecond is the
// instantaneous rate since the previous progress event.
type ProgressEvent struct {
	Type           string  `json:"type"`
	Pass           int     `json:"pass"`
	TotalPasses    int     `json:"total_passes"`
	BytesWritten   uint64  `json:"bytes_written"`
	TotalBytes     uint64  `json:"total_bytes"`
	Percent        float64 `json:"percent"`
	BytesPerSecond float64 `json:"bytes_per_second"`
}

// PassCompleteEvent marks the end of one overwrite pass.
type PassCompleteEvent struct {
	Type        string `json:"type"`
	Pass        int    `json:"pass"`
	TotalPasses int    `json:"total_passes"`
}

// CompleteEvent closes a successful session with cumulative statistics.
type CompleteEvent struct {
	Type                 string  `json:"type"`
	TotalTimeSeconds     float64 `json:"total_time_seconds"`
	AverageThroughputMBs float64 `json:"average_throughput_mb_s"`
}

type InfoEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Demo-provisioning events, owned by the demo collaborator.
type DemoFileCreatingEvent struct {
	Type         string  `json:"type"`
	BytesWritten uint64  `json:"bytes_written"`
	TotalBytes   uint64  `json:"total_bytes"`
	Percent      float64 `json:"percent"`
}

type DemoFileCreatedEvent struct {
	Type   string `json:"type"`
	Path   string `json:"path"`
	SizeMB uint64 `json:"size_mb"`
}

func Start(algorithm string, totalPasses int, sizeBytes uint64, bufferKB int) StartEvent {
	return StartEvent{
		Type:          "start",
		Algorithm:     algorithm,
		TotalPasses:   totalPasses,
		FileSizeBytes: sizeBytes,
		BufferSizeKB:  bufferKB,
	}
}

func PassStart(pass, totalPasses int, pattern string) PassStartEvent {
	return PassStartEvent{Type: "pass_start", Pass: pass, TotalPasses: totalPasses, Pattern: pattern}
}

func Progress(pass, totalPasses int, written, total uint64, percent, bytesPerSecond float64) ProgressEvent {
	return ProgressEvent{
		Type:           "progress",
		Pass:           pass,
		TotalPasses:    totalPasses,
		BytesWritten:   written,
		TotalBytes:     total,
		Percent:        percent,
		BytesPerSecond: bytesPerSecond,
	}
}

func PassComplete(pass, totalPasses int) PassCompleteEvent {
	return PassCompleteEvent{Type: "pass_complete", Pass: pass, TotalPasses: totalPasses}
}

func Complete(totalSeconds, averageMBs float64) CompleteEvent {
	return CompleteEvent{Type: "complete", TotalTimeSeconds: totalSeconds, AverageThroughputMBs: averageMBs}
}

func Info(message string) InfoEvent {
	return InfoEvent{Type: "info", Message: message}
}

func Error(message string) ErrorEvent {
	return ErrorEvent{Type: "error", Message: message}
}

func DemoFileCreating(written, total uint64, percent float64) DemoFileCreatingEvent {
	return DemoFileCreatingEvent{Type: "demo_file_creating", BytesWritten: written, TotalBytes: total, Percent: percent}
}

func DemoFileCreated(path string, sizeMB uint64) DemoFileCreatedEvent {
	return DemoFileCreatedEvent{Type: "demo_file_created", Path: path, SizeMB: sizeMB}
}
