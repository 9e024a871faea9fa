// Package news holds the news filtering rules and the industry classifier.
// The same Apply runs against live data and the local seed set.
package news

import (
	"slices"
	"strings"

	model "github.com/okian/pulss/internal/domain/model"
)

// industryKeywords is checked in order; the first match wins.
var industryKeywords = []struct {
	tag      model.Industry
	keywords []string
}{
	{model.IndustryFood, []string{"飲食", "food", "yakiniku", "restaurant"}},
	{model.IndustryBeauty, []string{"美容", "beauty", "salon"}},
	{model.IndustryHotel, []string{"ホテル", "hotel", "travel"}},
}

// ClassifyIndustry maps a free-text industry label onto a news tag by
// case-insensitive substring match. Unmatched labels are IndustryOther.
func ClassifyIndustry(label string) model.Industry {
	lower := strings.ToLower(label)
	for _, entry := range industryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.tag
			}
		}
	}
	return model.IndustryOther
}

// Active reports whether a filter value constrains its dimension.
func Active(v string) bool {
	return v != "" && v != model.FilterAll
}

// Match reports whether item satisfies the platform and industry parts of f.
func Match(item model.SnsNewsItem, f model.NewsFilter) bool {
	if Active(f.Platform) && !slices.Contains(item.PlatformTags, model.Platform(f.Platform)) {
		return false
	}
	if Active(f.Industry) && !slices.Contains(item.IndustryTags, model.Industry(f.Industry)) {
		return false
	}
	return true
}

// Apply filters items by f and then truncates to f.Limit. The input is not
// modified.
func Apply(items []model.SnsNewsItem, f model.NewsFilter) []model.SnsNewsItem {
	out := make([]model.SnsNewsItem, 0, len(items))
	for _, item := range items {
		if Match(item, f) {
			out = append(out, item)
		}
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
