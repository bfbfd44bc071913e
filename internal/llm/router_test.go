package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	name string
}

func (p *staticProvider) Name() string         { return p.name }
func (p *staticProvider) DefaultModel() string { return "m" }
func (p *staticProvider) IsConfigured() bool   { return true }
func (p *staticProvider) Complete(ctx context.Context, question string) (string, error) {
	return "", nil
}

func TestRouter_GetProvider(t *testing.T) {
	r := NewRouter("groq")
	r.RegisterProvider(&staticProvider{name: "groq"})

	// An empty name falls back to the default; the provider must be
	// registered under that exact name to resolve.
	p, err := r.GetProvider("")
	require.NoError(t, err)
	assert.Equal(t, "groq", p.Name())

	p, err = r.GetProvider("groq")
	require.NoError(t, err)
	assert.Equal(t, "groq", p.Name())

	_, err = r.GetProvider("missing")
	assert.Error(t, err)
}

func TestRouter_GetProviderEmptyRouter(t *testing.T) {
	r := NewRouter("groq")

	_, err := r.GetProvider("")
	assert.Error(t, err)
}
