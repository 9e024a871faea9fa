package model

// Platform is an SNS platform tag.
type Platform string

// Platforms.
const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformX         Platform = "x"
	PlatformOther     Platform = "other"
)

// Industry is the closed tag set news items are classified into.
type Industry string

// Industries.
const (
	IndustryFood   Industry = "food"
	IndustryBeauty Industry = "beauty"
	IndustryHotel  Industry = "hotel"
	IndustryOther  Industry = "other"
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// SnsNewsItem is an industry news article. Read-only.
type SnsNewsItem struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	URL          string     `json:"url"`
	PlatformTags []Platform `json:"platform_tags"`
	IndustryTags []Industry `json:"industry_tags"`
	SourceName   string     `json:"source_name"`
	PublishedAt  Time       `json:"published_at"`
	FetchedAt    Time       `json:"fetched_at"`
}

// NewsFilter constrains a news listing. Empty or "all" means no constraint
// on that dimension; Limit <= 0 means no truncation.
type NewsFilter struct {
	Platform string
	Industry string
	Limit    int
}
