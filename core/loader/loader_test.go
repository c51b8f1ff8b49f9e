package loader

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestLoadAll_SkipsDisabledFeatures(t *testing.T) {
	enabled := &fakeFeature{name: "a", enabled: true}
	disabled := &fakeFeature{name: "b", enabled: false}

	m := NewManager()
	m.Register(enabled)
	m.Register(disabled)

	require.NoError(t, m.LoadAll(fiber.New()))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestLoadAll_FailsFast(t *testing.T) {
	failing := &fakeFeature{name: "broken", enabled: true, err: assert.AnError}
	after := &fakeFeature{name: "after", enabled: true}

	m := NewManager()
	m.Register(failing)
	m.Register(after)

	err := m.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
