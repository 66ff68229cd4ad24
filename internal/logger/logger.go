package logger

import (
	"RouletteLedger/internal/config"
	"RouletteLedger/pkg/errors"
	"RouletteLedger/pkg/logger"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// NewLogger builds the application logger. The returned close func releases
// the log file when one is configured.
func NewLogger(c config.Configurations, w io.Writer) (logger.Logger, func() error, error) {
	closeFn := func() error { return nil }

	level, err := logger.ParseLevel(c.Logger.Level)
	if err != nil {
		return nil, closeFn, err
	}
	if c.IsDebug() && level < logger.DebugLevel {
		level = logger.DebugLevel
	}

	lg := logger.New(w, level)

	if c.Logger.File != "" {
		f, err := os.OpenFile(c.Logger.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, closeFn, errors.WrapStack(err, "open log file")
		}
		lg.AddHook(&fileHook{w: f}, levelsUpTo(level)...)
		closeFn = f.Close
	}

	return lg, closeFn, nil
}

func levelsUpTo(max logger.Level) []logger.Level {
	lvls := make([]logger.Level, 0, max+1)
	for l := logger.PanicLevel; l <= max; l++ {
		lvls = append(lvls, l)
	}
	return lvls
}

// fileHook writes one plain line per entry, fields sorted by key
type fileHook struct {
	w io.Writer
}

func (h *fileHook) Fire(d *logger.HookData) error {
	keys := make([]string, 0, len(d.Fields))
	for k := range d.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %-7s %s", d.Time.Format(time.RFC3339), d.Level, strings.TrimSuffix(d.Message, "\n"))
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, fmt.Sprint(d.Fields[k]))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}
