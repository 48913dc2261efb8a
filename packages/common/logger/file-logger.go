package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

const DefaultDirectory = "/var/log/quarry"

const queueSize = 1024

var errLogger = NewSource("LOG", Stderr)

// Satisfies Logger, ConcurrentLogger and ForwardingLogger interfaces.
//
// Entries are written as JSON lines by a single goroutine which drains
// internal queue. If queue is overflowed, entry is written synchronously.
type FileLogger struct {
	name        string
	dir         string
	out         io.WriteCloser
	writeMu     sync.Mutex
	isRunning   atomic.Bool
	forwardings []Logger
	fwdMu       sync.RWMutex
	queue       chan *LogEntry
	done        chan struct{}
	drained     chan struct{}
	streams     sync.Pool
}

// Creates new file logger, which will write logs into <dir>/<name>.log
// File won't be opened until Start() is called.
func NewFileLogger(name string) *FileLogger {
	return &FileLogger{
		name:        name,
		dir:         DefaultDirectory,
		forwardings: []Logger{},
		queue:       make(chan *LogEntry, queueSize),
		streams: sync.Pool{
			New: func() any {
				return jsoniter.NewStream(jsoniter.ConfigFastest, nil, 1024)
			},
		},
	}
}

// Sets directory for the log file. Has no effect after Start().
func (l *FileLogger) SetDirectory(dir string) {
	if l.isRunning.Load() || dir == "" {
		return
	}
	l.dir = dir
}

// Sets destination of the log entries. Has no effect after Start().
// Mostly required for tests, by default logs are written into file.
func (l *FileLogger) SetOutput(out io.WriteCloser) {
	if l.isRunning.Load() {
		return
	}
	l.out = out
}

func (l *FileLogger) Start() error {
	if l.isRunning.Load() {
		return errors.New("logger already started")
	}

	if l.out == nil {
		if err := os.MkdirAll(l.dir, 0755); err != nil {
			return errors.New("failed to create log directory: " + err.Error())
		}

		f, err := os.OpenFile(
			filepath.Join(l.dir, l.name+".log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0644, // -rw-r--r--
		)
		if err != nil {
			return err
		}

		l.out = f
	}

	l.done = make(chan struct{})
	l.drained = make(chan struct{})

	l.isRunning.Store(true)

	go l.consume()

	return nil
}

func (l *FileLogger) Stop() error {
	if !l.isRunning.Load() {
		return errors.New("logger isn't started, hence can't be stopped")
	}

	l.isRunning.Store(false)

	close(l.done)
	<-l.drained

	out := l.out
	l.out = nil

	return out.Close()
}

func (l *FileLogger) consume() {
	defer close(l.drained)

	for {
		select {
		case entry := <-l.queue:
			l.write(entry)
		case <-l.done:
			for {
				select {
				case entry := <-l.queue:
					l.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (l *FileLogger) write(entry *LogEntry) {
	stream := l.streams.Get().(*jsoniter.Stream)
	defer l.streams.Put(stream)

	stream.Reset(nil)
	stream.Error = nil

	stream.WriteVal(entry)
	if stream.Error != nil {
		errLogger.Error("failed to write log", stream.Error.Error(), nil)
		return
	}

	// Without this all logs will be written in single line
	stream.WriteRaw("\n")

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if l.out == nil {
		return
	}

	if _, err := l.out.Write(stream.Buffer()); err != nil {
		errLogger.Error("failed to write log", err.Error(), nil)
	}
}

func (l *FileLogger) log(entry *LogEntry) {
	if !l.isRunning.Load() {
		return
	}

	select {
	case l.queue <- entry:
	default:
		// queue is overflowed
		l.write(entry)
	}
}

func (l *FileLogger) Log(entry *LogEntry) {
	l.fwdMu.RLock()
	ok := preprocess(entry, l.forwardings)
	l.fwdMu.RUnlock()

	if !ok {
		return
	}

	// Immediately handle panic or fatal log
	if entry.rawLevel >= FatalLogLevel {
		if l.isRunning.Load() {
			l.write(entry)
		}
		handleCritical(entry)
	}

	l.log(entry)
}

func (l *FileLogger) NewForwarding(logger Logger) error {
	if logger == nil {
		return errors.New("received nil instead of logger")
	}

	if fileLogger, ok := logger.(*FileLogger); ok && l == fileLogger {
		return errors.New("can't create forwarding to self")
	}

	l.fwdMu.Lock()
	defer l.fwdMu.Unlock()

	if slices.Contains(l.forwardings, logger) {
		return errors.New("this logger already has forwarding")
	}

	l.forwardings = append(l.forwardings, logger)

	return nil
}

func (l *FileLogger) RemoveForwarding(logger Logger) error {
	l.fwdMu.Lock()
	defer l.fwdMu.Unlock()

	idx := slices.Index(l.forwardings, logger)
	if idx == -1 {
		return errors.New("forwarding to specified logger isn't exist")
	}

	l.forwardings = slices.Delete(l.forwardings, idx, idx+1)

	return nil
}
