package instrument

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/trace"
)

const maskedValue = "[MASKED]"

func initLogging(serviceName string, lp *sdklog.LoggerProvider, maskFields []string) {
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	otelHandler := otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(lp))

	handler := newContextHandler(newMaskHandler(
		newMultiHandler(jsonHandler, otelHandler),
		maskFields,
	))

	slog.SetDefault(slog.New(handler))
}

// contextHandler decorates every record with trace and correlation metadata
// taken from the request context.
type contextHandler struct {
	next slog.Handler
}

func newContextHandler(next slog.Handler) *contextHandler {
	return &contextHandler{next: next}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		rec.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	if cid := GetCorrelationID(ctx); cid != "" {
		rec.AddAttrs(slog.String("correlation_id", cid))
	}

	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name)}
}

// multiHandler fans a record out to several handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h *multiHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, rec.Level) {
			if err := handler.Handle(ctx, rec.Clone()); err != nil {
				return err
			}
		}
	}

	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}

	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}

	return &multiHandler{handlers: handlers}
}

// maskHandler replaces the values of sensitive attributes before the record
// reaches any sink. One-time secrets and passwords must never be logged.
type maskHandler struct {
	next   slog.Handler
	fields map[string]struct{}
}

func newMaskHandler(next slog.Handler, fields []string) *maskHandler {
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}

	return &maskHandler{next: next, fields: set}
}

func (h *maskHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *maskHandler) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.fields) == 0 {
		return h.next.Handle(ctx, rec)
	}

	masked := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(attr))

		return true
	})

	return h.next.Handle(ctx, masked)
}

func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		out[i] = h.maskAttr(attr)
	}

	return &maskHandler{next: h.next.WithAttrs(out), fields: h.fields}
}

func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{next: h.next.WithGroup(name), fields: h.fields}
}

func (h *maskHandler) maskAttr(attr slog.Attr) slog.Attr {
	if _, ok := h.fields[attr.Key]; ok {
		return slog.String(attr.Key, maskedValue)
	}

	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		out := make([]any, 0, len(group))
		for _, inner := range group {
			out = append(out, h.maskAttr(inner))
		}

		return slog.Group(attr.Key, out...)
	}

	if m, ok := attr.Value.Any().(map[string]any); ok {
		return slog.Any(attr.Key, h.maskMap(m))
	}

	return attr
}

func (h *maskHandler) maskMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		if _, ok := h.fields[key]; ok {
			out[key] = maskedValue

			continue
		}

		if nested, ok := value.(map[string]any); ok {
			out[key] = h.maskMap(nested)

			continue
		}

		out[key] = value
	}

	return out
}
