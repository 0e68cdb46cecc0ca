// Command emlogdemo exercises the logger on a host: it loads EMLOG_*
// settings, applies flag overrides, emits a burst of log calls in the
// selected mode and prints the fault log.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/emlog/bridge"
	"github.com/philipp01105/emlog/bridge/zapbridge"
	"github.com/philipp01105/emlog/config"
	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/crash"
	"github.com/philipp01105/emlog/handler"
	"github.com/philipp01105/emlog/handler/filehandler"
	"github.com/philipp01105/emlog/handler/sloghandler"
	"github.com/philipp01105/emlog/handler/zaphandler"
	"github.com/philipp01105/emlog/logger"
	"github.com/philipp01105/emlog/metrics"
)

type options struct {
	mode        string
	appName     string
	level       string
	capacity    int
	count       int
	noColor     bool
	logFile     string
	metricsAddr string
	sentryDSN   string
	mirrorZap   bool
	crash       bool
}

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer zl.Sync()

	cfg, err := config.Load()
	if err != nil {
		zl.Fatal("load config", zap.Error(err))
	}

	opts := parseFlags(cfg)
	if err := applyFlags(cfg, opts); err != nil {
		zl.Fatal("invalid flags", zap.Error(err))
	}

	if err := run(zl, cfg, opts); err != nil {
		zl.Fatal("demo failed", zap.Error(err))
	}
}

func parseFlags(cfg *config.Config) *options {
	o := &options{}
	fs := pflag.NewFlagSet("emlogdemo", pflag.ExitOnError)
	fs.StringVarP(&o.mode, "mode", "m", cfg.Mode.String(), "logger mode: runtime, faultlog or disabled")
	fs.StringVarP(&o.appName, "app", "a", cfg.AppName, "application name shown in headers")
	fs.StringVarP(&o.level, "level", "l", cfg.Level.String(), "minimum level")
	fs.IntVarP(&o.capacity, "capacity", "c", cfg.BufferSize, "buffer size in bytes")
	fs.IntVarP(&o.count, "count", "n", 20, "number of log calls to emit")
	fs.BoolVar(&o.noColor, "no-color", !cfg.Color, "disable ANSI colors")
	fs.StringVar(&o.logFile, "log-file", cfg.LogFile, "also write lines to this rotating file")
	fs.StringVar(&o.metricsAddr, "metrics-addr", cfg.MetricsAddr, "serve /metrics on this address after the burst")
	fs.StringVar(&o.sentryDSN, "sentry-dsn", cfg.SentryDSN, "report the fault log to Sentry")
	fs.BoolVar(&o.mirrorZap, "zap", false, "mirror formatted lines into the tool's zap log")
	fs.BoolVar(&o.crash, "crash", false, "end with a guarded panic")
	fs.Parse(os.Args[1:])
	return o
}

func applyFlags(cfg *config.Config, o *options) error {
	m, err := logger.ParseMode(o.mode)
	if err != nil {
		return err
	}
	l, err := core.ParseLevel(o.level)
	if err != nil {
		return err
	}
	cfg.Mode = m
	cfg.Level = l
	cfg.AppName = o.appName
	cfg.BufferSize = o.capacity
	cfg.Color = !o.noColor
	cfg.LogFile = o.logFile
	cfg.MetricsAddr = o.metricsAddr
	cfg.SentryDSN = o.sentryDSN
	return cfg.Validate()
}

func run(zl *zap.Logger, cfg *config.Config, o *options) error {
	stdout := handler.NewWriterSink(handler.WriterConfig{Writer: os.Stdout})
	sinks := []handler.Sink{stdout}
	if cfg.LogFile != "" {
		fs, err := filehandler.NewFileSink(filehandler.FileConfig{Filename: cfg.LogFile, MaxSizeMB: 1, MaxBackups: 3})
		if err != nil {
			return err
		}
		sinks = append(sinks, fs)
	}
	if o.mirrorZap {
		sinks = append(sinks, zaphandler.New(zl.Named("device"), zapcore.InfoLevel))
	}
	sink := handler.NewMultiSink(sinks...)

	log := cfg.Builder().Build()
	log.Register(core.NewElapsedClock(nil), sink)
	defer log.Close()
	logger.SetDefault(log)

	zl.Info("logger ready",
		zap.Stringer("mode", log.Mode()),
		zap.String("app", log.AppName()),
		zap.Stringer("level", log.Level()),
		zap.Int("capacity", log.Capacity()))

	var rec *bridge.Recorder
	if acc := log.Accumulator(); acc != nil {
		// Tool log calls leave breadcrumbs next to the device ones.
		rec = bridge.NewRecorder(acc)
		zl = zl.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, zapbridge.NewCore(rec, zapcore.WarnLevel))
		}))
	}

	burst(log, o.count)
	slog.New(sloghandler.New(log)).Warn("burst done", "calls", o.count)
	zl.Warn("burst finished", zap.Int("calls", o.count))

	reporter := newReporter(zl, cfg)
	if acc := log.Accumulator(); acc != nil {
		reporter.Report(crash.Capture(acc, nil))
	}

	if o.crash {
		defer crash.Guard(log.Accumulator(), reporter)
		var readings map[string]int
		readings["adc"]++
	}

	if cfg.MetricsAddr != "" {
		var src metrics.AccumulatorSource
		if rec != nil {
			src = rec
		}
		return serveMetrics(zl, cfg.MetricsAddr, metrics.NewCollector("emlog", src, stdout))
	}
	return nil
}

func burst(log *logger.Logger, n int) {
	for i := 0; i < n; i++ {
		switch i % 5 {
		case 0:
			log.Debugf("tick %d", i)
		case 1:
			log.Infof("sample %d = %d mV", i, 1600+i)
		case 2:
			log.Warnf("retry %d", i)
		case 3:
			log.Errorf("checksum mismatch on frame %d", i)
		default:
			logger.Logf(logger.FatalLevel, "watchdog near expiry at %d", i)
		}
	}
}

func newReporter(zl *zap.Logger, cfg *config.Config) crash.Reporter {
	if cfg.SentryDSN == "" {
		return crash.NewWriterReporter(os.Stderr)
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Release: cfg.AppName}); err != nil {
		zl.Warn("sentry init failed", zap.Error(err))
		return crash.NewWriterReporter(os.Stderr)
	}
	return crash.NewSentryReporter(sentry.CurrentHub(), crash.DefaultFlushTimeout)
}

func serveMetrics(zl *zap.Logger, addr string, c prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	zl.Info("serving metrics", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
