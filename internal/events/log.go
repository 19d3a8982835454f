// internal/events/log.go
package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogPublisher records events in the log when no broker is configured.
type LogPublisher struct {
	logger *logrus.Entry
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogPublisher{logger: logger.WithField("component", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	p.logger.WithFields(logrus.Fields{
		"key":     key,
		"payload": string(payload),
	}).Info("Event recorded")
	return nil
}

func (p *LogPublisher) Close() error { return nil }
