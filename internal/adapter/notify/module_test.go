package notify

import (
	"testing"

	"github.com/strungco/stringmart/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{NotifierAddress: "http://example.com"}
	client, err := newClient(clientParams{Config: cfg, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*HTTPClient); !ok {
		t.Fatalf("expected HTTP client, got %T", client)
	}
}

func TestNewClientWithoutSink(t *testing.T) {
	cfg := &config.Config{}
	client, err := newClient(clientParams{Config: cfg, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(NopClient); !ok {
		t.Fatalf("expected nop client without configured sink, got %T", client)
	}
}
