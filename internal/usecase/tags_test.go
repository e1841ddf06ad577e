package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagAggregatorAugment(t *testing.T) {
	tests := []struct {
		name string
		host string
		user string
		base []string
		want []string
	}{
		{
			name: "host and user resolved",
			host: "blog.example.org",
			user: "editor",
			base: []string{"base"},
			want: []string{"base", "site-blog.example.org", "user-editor"},
		},
		{
			name: "unresolvable site hostname",
			host: "",
			user: "editor",
			base: []string{"base"},
			want: nil,
		},
		{
			name: "unattended save without acting user",
			host: "blog.example.org",
			user: "",
			base: []string{"base"},
			want: nil,
		},
		{
			name: "empty base still gets site and user tags",
			host: "blog.example.org",
			user: "editor",
			base: nil,
			want: []string{"site-blog.example.org", "user-editor"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewTagAggregator(
				func(ctx context.Context) string { return tt.host },
				func(ctx context.Context) string { return tt.user },
			)

			got := agg.Augment(context.Background(), tt.base)

			assert.Equal(t, tt.want, got)
		})
	}
}
