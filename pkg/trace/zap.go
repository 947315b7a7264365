package trace

import (
	"go.uber.org/zap"
)

var _ Sink = (*ZapSink)(nil)

// ZapSink forwards buffer events to a zap logger.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a sink writing to the given logger.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// Emit implements Sink.
func (s *ZapSink) Emit(ev Event) {
	fields := []zap.Field{
		zap.String("actor", ev.Actor),
		zap.Int("size", ev.Size),
	}
	if ev.Item != nil {
		fields = append(fields, zap.Any("item", ev.Item))
	}
	s.log.Info(ev.Kind.String(), fields...)
}
