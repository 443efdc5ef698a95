package geocode

import (
	"context"
	"errors"
	"testing"
)

func TestFixtureProviderForward(t *testing.T) {
	p := NewFixtureProvider(0)
	p.AddForward("tuttle", Response{Status: "OK", Results: []Result{{FormattedAddress: "Tuttle Creek Lake"}}})

	resp, err := p.Geocode(context.Background(), "tuttle")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, expected 1", len(resp.Results))
	}

	resp, err = p.Geocode(context.Background(), "unknown query")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if resp.Status != "ZERO_RESULTS" || len(resp.Results) != 0 {
		t.Errorf("unknown query = %q with %d results, expected ZERO_RESULTS", resp.Status, len(resp.Results))
	}
}

func TestFixtureProviderQuota(t *testing.T) {
	p := NewFixtureProvider(2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := p.Geocode(ctx, "q"); err != nil {
			t.Fatalf("request %d returned error: %v", i+1, err)
		}
	}

	_, err := p.Geocode(ctx, "q")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("err = %v, expected ErrQuotaExceeded", err)
	}
}

func TestFixtureProviderReverse(t *testing.T) {
	p := NewFixtureProvider(0)
	p.AddReverse(39.2506, -96.6036, Response{Status: "OK", Results: []Result{{FormattedAddress: "Riley County"}}})

	resp, err := p.ReverseGeocode(context.Background(), 39.2506, -96.6036)
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Errorf("got %d results, expected 1", len(resp.Results))
	}
}

func TestFixtureProviderContextCancelled(t *testing.T) {
	p := NewFixtureProvider(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Geocode(ctx, "q"); err == nil {
		t.Error("Geocode with cancelled context expected error, got nil")
	}
}
