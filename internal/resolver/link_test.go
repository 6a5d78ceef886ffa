package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLink(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "short link embedded in text",
			text: "check this out https://vm.tiktok.com/ZMabc123/",
			want: "https://vm.tiktok.com/ZMabc123/",
			ok:   true,
		},
		{
			name: "match stops at whitespace",
			text: "tiktok.com/@user/video/123 watch it",
			want: "tiktok.com/@user/video/123",
			ok:   true,
		},
		{
			name: "scheme and www optional",
			text: "www.tiktok.com/@user/video/123",
			want: "www.tiktok.com/@user/video/123",
			ok:   true,
		},
		{
			name: "host matching is case-insensitive",
			text: "WWW.TIKTOK.COM/@User/Video/1",
			want: "WWW.TIKTOK.COM/@User/Video/1",
			ok:   true,
		},
		{
			name: "mobile subdomain",
			text: "see https://m.tiktok.com/v/456.html please",
			want: "https://m.tiktok.com/v/456.html",
			ok:   true,
		},
		{
			name: "vt short link",
			text: "https://vt.tiktok.com/ZS123/",
			want: "https://vt.tiktok.com/ZS123/",
			ok:   true,
		},
		{
			name: "first match wins",
			text: "https://vm.tiktok.com/first/ and https://vm.tiktok.com/second/",
			want: "https://vm.tiktok.com/first/",
			ok:   true,
		},
		{
			name: "unsupported host",
			text: "https://instagram.com/reel/abc",
			ok:   false,
		},
		{
			name: "host without path",
			text: "I love tiktok.com",
			ok:   false,
		},
		{
			name: "no link at all",
			text: "hello there",
			ok:   false,
		},
		{
			name: "empty text",
			text: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLink(tt.text)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidURL(t *testing.T) {
	assert.True(t, ValidURL("https://vm.tiktok.com/ZMabc123/"))
	assert.True(t, ValidURL("tiktok.com/@user/video/1"))
	assert.True(t, ValidURL("http://www.tiktok.com/@user/video/1"))
	assert.False(t, ValidURL("https://example.com/tiktok.com/x"))
	assert.False(t, ValidURL("https://faketiktok.com/x"))
	assert.False(t, ValidURL(""))
}
