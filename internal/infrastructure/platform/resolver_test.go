package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortsync/shortsync/internal/entity"
)

func TestSanitizeSlug(t *testing.T) {
	resolver := NewResolver("https://blog.example.org")

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "simple title",
			text: "Hello World!",
			want: "hello-world",
		},
		{
			name: "mixed punctuation collapses",
			text: "Go 1.21 -- Released?!",
			want: "go-1-21-released",
		},
		{
			name: "unicode letters survive",
			text: "Füße & Hände",
			want: "füße-hände",
		},
		{
			name: "leading punctuation dropped",
			text: "...Hello",
			want: "hello",
		},
		{
			name: "nothing usable",
			text: "?!...",
			want: "",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.SanitizeSlug(tt.text))
		})
	}
}

func TestPermalink(t *testing.T) {
	resolver := NewResolver("https://blog.example.org/")

	link, err := resolver.Permalink(entity.Post{ID: 1, Slug: "hello-world"})
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.org/hello-world/", link)

	_, err = resolver.Permalink(entity.Post{ID: 2})
	assert.Error(t, err, "post without slug has no permalink")
}

func TestSiteHost(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "blog.example.org", NewResolver("https://blog.example.org").SiteHost(ctx))
	assert.Equal(t, "localhost", NewResolver("http://localhost:8080").SiteHost(ctx))
	assert.Empty(t, NewResolver("").SiteHost(ctx))
}

func TestActingUser(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ActingUser(ctx), "no acting user on a bare context")
	assert.Equal(t, "editor", ActingUser(WithActingUser(ctx, "editor")))
}
