package report

import (
	"io"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vedantwpatil/mouse-keepalive/internal/keepalive"
)

// JSON writes one structured record per event, for piping into log collectors.
type JSON struct {
	log *zap.Logger
}

func NewJSON(w io.Writer) *JSON {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zapcore.InfoLevel)
	return &JSON{log: zap.New(core)}
}

func (j *JSON) ReportStart(opts keepalive.Options) {
	j.log.Info("start",
		zap.Int("interval", keepalive.Seconds(opts.Interval)),
		zap.Int("duration", keepalive.Seconds(opts.Duration)),
		zap.String("os", runtime.GOOS),
	)
}

func (j *JSON) ReportTick(t keepalive.Tick) {
	j.log.Info("tick",
		zap.Int("elapsed", keepalive.Seconds(t.Elapsed)),
		zap.Int("moves", t.Moves),
		zap.Int("x", t.X),
		zap.Int("y", t.Y),
	)
}

func (j *JSON) ReportError(err error) {
	j.log.Error("error", zap.String("err", err.Error()))
}

// ReportComplete writes the summary record and flushes the sink.
func (j *JSON) ReportComplete(s keepalive.Summary) {
	j.log.Info("complete",
		zap.String("cause", s.Cause.String()),
		zap.Int("total_moves", s.Moves),
		zap.Int("elapsed", keepalive.Seconds(s.Elapsed)),
	)
	_ = j.log.Sync()
}
