package reactagent

import (
	"sync"
	"time"
)

// MediumDateTimeLayout renders a time in the medium date and medium time style,
// e.g. "Feb 15, 2025 at 2:30:00 PM".
const MediumDateTimeLayout = "Jan 2, 2006 at 3:04:05 PM"

// TimeProvider provides the current time to tools and step timestamps.
// It allows injecting custom time sources for testing.
type TimeProvider interface {
	// Now returns the current time.
	Now() time.Time

	// Format returns the current time formatted with the given layout.
	Format(layout string) string
}

// DefaultTimeProvider is the standard TimeProvider using the system clock.
type DefaultTimeProvider struct{}

// NewDefaultTimeProvider creates a new DefaultTimeProvider.
func NewDefaultTimeProvider() *DefaultTimeProvider {
	return &DefaultTimeProvider{}
}

// Now returns the current system time.
func (p *DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// Format returns the current time formatted with the given layout.
func (p *DefaultTimeProvider) Format(layout string) string {
	return p.Now().Format(layout)
}

// MockTimeProvider is a TimeProvider that returns a fixed time.
// Useful for testing time-dependent functionality.
type MockTimeProvider struct {
	mu        sync.Mutex
	fixedTime time.Time
}

// NewMockTimeProvider creates a MockTimeProvider with the given fixed time.
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{fixedTime: t}
}

// SetTime updates the fixed time returned by Now().
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedTime = t
}

// Advance moves the fixed time forward by d.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedTime = m.fixedTime.Add(d)
}

// Now returns the fixed time.
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fixedTime
}

// Format returns the fixed time formatted with the given layout.
func (m *MockTimeProvider) Format(layout string) string {
	return m.Now().Format(layout)
}

// Compile-time checks that both providers implement TimeProvider.
var (
	_ TimeProvider = (*DefaultTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)
