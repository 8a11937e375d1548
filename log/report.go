package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/common"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ReportLogger writes one JSON record per trajectory step to a file per
// day, trajectory-YYYY-MM-DD.log, under a fixed directory.
type ReportLogger struct {
	*zap.Logger
	dl *dailyLogger
}

// NewReportLogger fails when dir is not a writable directory.
func NewReportLogger(dir string) (*ReportLogger, error) {
	if err := common.IsDirWritable(dir); err != nil {
		return nil, errors.Wrapf(err, "failed to write to %s", dir)
	}
	dl := newDailyLogger(dir, "trajectory")
	c := zap.NewProductionEncoderConfig()
	c.EncodeTime = zapcore.ISO8601TimeEncoder
	c.TimeKey = "timestamp"
	c.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewJSONEncoder(c), zapcore.AddSync(dl), zap.InfoLevel)
	return &ReportLogger{Logger: zap.New(core), dl: dl}, nil
}

// Close flushes and closes the current file. Both errors are reported.
func (r *ReportLogger) Close() error {
	return multierr.Append(r.Logger.Sync(), r.dl.Close())
}

// CurrentFile is the path of the file last written, or "" before the
// first write.
func (r *ReportLogger) CurrentFile() string {
	r.dl.mu.Lock()
	defer r.dl.mu.Unlock()
	if r.dl.currentFileName == "" {
		return ""
	}
	return filepath.Join(r.dl.fileDir, r.dl.currentFileName)
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	prefix          string
	currentFileName string
	file            *os.File
	now             func() time.Time
}

func newDailyLogger(fileDir, prefix string) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
		prefix:  prefix,
		now:     time.Now,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := fmt.Sprintf("%s-%s.log", dl.prefix, dl.now().Format("2006-01-02"))
	if dl.file == nil || dl.currentFileName != fileName {
		if dl.file != nil {
			if err := dl.file.Close(); err != nil {
				zap.L().Warn("failed to close report file", zap.String("file", dl.currentFileName), zap.Error(err))
			}
		}
		var err error
		dl.file, err = os.OpenFile(filepath.Join(dl.fileDir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}

	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file != nil {
		err := dl.file.Close()
		dl.file = nil
		return err
	}
	return nil
}
