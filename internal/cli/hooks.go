package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shortpath/pkg/observability"
)

// logHooks forwards observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLoadStart(_ context.Context, name string) {
	h.logger.Debug("load started", "input", name)
}

func (h logHooks) OnLoadComplete(_ context.Context, name string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "input", name, "error", err, "duration", d)
		return
	}
	h.logger.Debug("load finished", "input", name, "vertices", vertices, "edges", edges, "duration", d)
}

func (h logHooks) OnSolveStart(_ context.Context, vertices, source int) {
	h.logger.Debug("solve started", "vertices", vertices, "source", source)
}

func (h logHooks) OnSolveComplete(_ context.Context, settled int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "settled", settled, "error", err, "duration", d)
		return
	}
	h.logger.Debug("solve finished", "settled", settled, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache store", "key", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

// registerLogHooks installs logHooks for every hook category.
func registerLogHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}
