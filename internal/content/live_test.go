package content

import (
	"testing"
	"time"

	"github.com/sha1n/sitesearch/internal/domain"
)

func TestLivePredicate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		data          domain.ItemData
		includeDrafts bool
		want          bool
	}{
		{"undated", domain.ItemData{}, false, true},
		{"past", domain.ItemData{Date: now.Add(-time.Hour)}, false, true},
		{"exactly now", domain.ItemData{Date: now}, false, true},
		{"future", domain.ItemData{Date: now.Add(time.Hour)}, false, false},
		{"draft", domain.ItemData{Draft: true}, false, false},
		{"draft included", domain.ItemData{Draft: true}, true, true},
		{"future draft included", domain.ItemData{Draft: true, Date: now.Add(time.Hour)}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isLive := LivePredicate(now, tt.includeDrafts)
			if got := isLive(domain.ContentItem{Data: tt.data}); got != tt.want {
				t.Errorf("isLive = %v, want %v", got, tt.want)
			}
		})
	}
}
