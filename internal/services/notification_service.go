// internal/services/notification_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/grocer/internal/models"
)

const EventTypeOrderPlaced = "order.placed"

// EventPublisher delivers an encoded event keyed by its aggregate id.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type NotificationService struct {
	publisher EventPublisher
	logger    *logrus.Entry
	templates map[string]*template.Template
}

type OrderEvent struct {
	EventID    string       `json:"event_id"`
	Type       string       `json:"type"`
	OccurredAt time.Time    `json:"occurred_at"`
	Summary    string       `json:"summary"`
	Order      models.Order `json:"order"`
}

func NewNotificationService(publisher EventPublisher, logger *logrus.Logger) *NotificationService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &NotificationService{
		publisher: publisher,
		logger:    logger.WithField("component", "notifications"),
		templates: parseTemplates(),
	}
}

// OrderPlaced publishes an order.placed event. Failures are logged and swallowed;
// the order is already recorded.
func (s *NotificationService) OrderPlaced(ctx context.Context, order models.Order) {
	log := s.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.Total,
		"lines":    len(order.Items),
	})

	summary, err := s.renderTemplate(EventTypeOrderPlaced, order)
	if err != nil {
		log.WithError(err).Warn("Failed to render order summary")
	}

	event := OrderEvent{
		EventID:    uuid.NewString(),
		Type:       EventTypeOrderPlaced,
		OccurredAt: order.Date,
		Summary:    summary,
		Order:      order,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("Failed to encode order event")
		return
	}

	if s.publisher == nil {
		log.Info("Order placed")
		return
	}
	if err := s.publisher.Publish(ctx, order.ID, payload); err != nil {
		log.WithError(err).Error("Failed to publish order event")
		return
	}
	log.WithField("event_id", event.EventID).Info("Order event published")
}

func (s *NotificationService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("no template named %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func parseTemplates() map[string]*template.Template {
	funcs := template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	}
	return map[string]*template.Template{
		EventTypeOrderPlaced: template.Must(template.New(EventTypeOrderPlaced).Funcs(funcs).Parse(
			`Order {{.ID}} for {{.ShippingInfo.FullName}}: {{range $i, $item := .Items}}{{if $i}}, {{end}}{{$item.Name}} x {{$item.Quantity}}{{end}}. Total {{money .Total}} via {{.PaymentMethod}}.`,
		)),
	}
}
