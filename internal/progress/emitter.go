package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Emitter delivers one event as a single self-contained unit. Events are
// never split or merged across the channel.
type Emitter interface {
	Emit(event any) error
}

// JSONEmitter writes one JSON object per line for machine consumption.
type JSONEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{w: w}
}

func (e *JSONEmitter) Emit(event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	data = append(data, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()

	// One Write call per event keeps the record atomic on the channel.
	_, err = e.w.Write(data)
	return err
}

// ConsoleEmitter renders events for an interactive terminal. Progress
// updates redraw a single status line.
type ConsoleEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleEmitter(w io.Writer) *ConsoleEmitter {
	return &ConsoleEmitter{w: w}
}

func (e *ConsoleEmitter) Emit(event any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch ev := event.(type) {
	case StartEvent:
		fmt.Fprintf(e.w, "Starting secure wipe using %s algorithm (%d passes)\n", ev.Algorithm, ev.TotalPasses)
		fmt.Fprintf(e.w, "Target size: %.2f MB\n", float64(ev.FileSizeBytes)/1048576.0)
		fmt.Fprintf(e.w, "Buffer size: %d KB\n\n", ev.BufferSizeKB)
	case PassStartEvent:
		fmt.Fprintf(e.w, "Pass %d/%d [%s]\n", ev.Pass, ev.TotalPasses, ev.Pattern)
	case ProgressEvent:
		fmt.Fprintf(e.w, "\rPass %d/%d: %6.1f%% | %.1f MB/s",
			ev.Pass, ev.TotalPasses, ev.Percent, ev.BytesPerSecond/1048576.0)
	case PassCompleteEvent:
		fmt.Fprintf(e.w, "\rPass %d/%d: completed                    \n", ev.Pass, ev.TotalPasses)
	case CompleteEvent:
		fmt.Fprintf(e.w, "\nSecure wipe completed successfully!\n")
		fmt.Fprintf(e.w, "Total time: %.2f seconds\n", ev.TotalTimeSeconds)
		fmt.Fprintf(e.w, "Average throughput: %.2f MB/s\n", ev.AverageThroughputMBs)
	case InfoEvent:
		fmt.Fprintf(e.w, "%s\n", ev.Message)
	case ErrorEvent:
		fmt.Fprintf(e.w, "Error: %s\n", ev.Message)
	case DemoFileCreatingEvent:
		fmt.Fprintf(e.w, "\rCreating demo file: %6.1f%%", ev.Percent)
	case DemoFileCreatedEvent:
		fmt.Fprintf(e.w, "\rDemo file ready for secure wiping: %s (%d MB)\n", ev.Path, ev.SizeMB)
	default:
		fmt.Fprintf(e.w, "%v\n", ev)
	}
	return nil
}
