package geocode

import (
	"context"
	"fmt"
	"sync"
)

// FixtureProvider serves saved geocoder responses keyed by encoded
// query or by reverse-geocoding point. Runs are batched against an
// upstream quota, so the provider enforces one here too and returns
// ErrQuotaExceeded when it is spent.
type FixtureProvider struct {
	mu        sync.Mutex
	forward   map[string]Response
	reverse   map[string]Response
	quota     int
	remaining int
}

// NewFixtureProvider creates a provider with the given request quota.
// A quota of 0 means unlimited.
func NewFixtureProvider(quota int) *FixtureProvider {
	return &FixtureProvider{
		forward:   map[string]Response{},
		reverse:   map[string]Response{},
		quota:     quota,
		remaining: quota,
	}
}

// AddForward registers a response for an encoded query.
func (p *FixtureProvider) AddForward(encoded string, resp Response) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forward[encoded] = resp
}

// AddReverse registers a response for a point.
func (p *FixtureProvider) AddReverse(lat, lng float64, resp Response) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reverse[pointKey(lat, lng)] = resp
}

// Geocode returns the saved response for an encoded query. Unknown
// queries yield an empty ZERO_RESULTS response.
func (p *FixtureProvider) Geocode(ctx context.Context, address string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.spend(); err != nil {
		return Response{}, err
	}
	if resp, ok := p.forward[address]; ok {
		return resp, nil
	}
	return Response{Status: "ZERO_RESULTS"}, nil
}

// ReverseGeocode returns the saved response for a point.
func (p *FixtureProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.spend(); err != nil {
		return Response{}, err
	}
	if resp, ok := p.reverse[pointKey(lat, lng)]; ok {
		return resp, nil
	}
	return Response{Status: "ZERO_RESULTS"}, nil
}

func (p *FixtureProvider) spend() error {
	if p.quota == 0 {
		return nil
	}
	if p.remaining <= 0 {
		return ErrQuotaExceeded
	}
	p.remaining--
	return nil
}

func pointKey(lat, lng float64) string {
	return fmt.Sprintf("%.6f,%.6f", lat, lng)
}
