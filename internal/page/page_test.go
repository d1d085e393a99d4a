package page_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/midas/internal/page"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantNumber int
		wantSize   int
		wantOffset int
	}{
		{name: "Defaults", query: "", wantNumber: 1, wantSize: 12, wantOffset: 0},
		{name: "SecondPage", query: "page=2", wantNumber: 2, wantSize: 12, wantOffset: 12},
		{name: "CustomSize", query: "page=3&page_size=5", wantNumber: 3, wantSize: 5, wantOffset: 10},
		{name: "CapsSize", query: "page_size=1000", wantNumber: 1, wantSize: 100, wantOffset: 0},
		{name: "Malformed", query: "page=abc&page_size=-1", wantNumber: 1, wantSize: 12, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			got := page.FromQuery(q)
			assert.Equal(t, tt.wantNumber, got.Number)
			assert.Equal(t, tt.wantSize, got.Size)
			assert.Equal(t, tt.wantOffset, got.Offset())
			assert.False(t, got.IsZero())
		})
	}

	assert.True(t, page.Request{}.IsZero())
}
