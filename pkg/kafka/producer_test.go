package kafka

import (
	"testing"
	"time"
)

func TestNewProducer(t *testing.T) {
	cfg := Config{
		Brokers:      []string{"localhost:9092", "localhost:9093"},
		BatchTimeout: 5 * time.Millisecond,
	}

	p := NewProducer(cfg)
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.cfg.Brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.cfg.Brokers))
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
}

func TestGetOrCreateWriterReusesWriter(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"kafka:9092"}})

	w1 := p.getOrCreateWriter("pricing-events")
	w2 := p.getOrCreateWriter("pricing-events")
	if w1 != w2 {
		t.Error("expected the same writer for repeated topic lookups")
	}

	w3 := p.getOrCreateWriter("other-topic")
	if w1 == w3 {
		t.Error("expected distinct writers per topic")
	}
	if len(p.writers) != 2 {
		t.Errorf("expected 2 cached writers, got %d", len(p.writers))
	}
}

func TestWriterDefaults(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"kafka:9092"}})
	w := p.getOrCreateWriter("pricing-events")

	if w.BatchTimeout != 10*time.Millisecond {
		t.Errorf("expected default batch timeout 10ms, got %v", w.BatchTimeout)
	}
	if w.Topic != "pricing-events" {
		t.Errorf("unexpected topic %q", w.Topic)
	}
}

func TestMessageConstruction(t *testing.T) {
	msg := Message{
		Key:   []byte("account-123"),
		Value: []byte(`{"offer_count":4}`),
		Headers: map[string]string{
			"event_type": "pricing.quote.generated",
		},
	}

	if string(msg.Key) != "account-123" {
		t.Errorf("expected key account-123, got %s", string(msg.Key))
	}
	if msg.Headers["event_type"] != "pricing.quote.generated" {
		t.Errorf("unexpected header value %q", msg.Headers["event_type"])
	}
}
