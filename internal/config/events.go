// internal/config/events.go
package config

import "strings"

// BrokerList splits the comma separated broker string; empty means events are only logged.
func (e *EventsConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(e.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (e *EventsConfig) Enabled() bool {
	return len(e.BrokerList()) > 0
}
