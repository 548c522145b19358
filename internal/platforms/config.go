// Package platforms holds the per-platform configuration tables: formats,
// field limits, and hashtag caps. Behavior differences between platforms are
// data in these maps, not code.
package platforms

import "channelmagic/models"

// Format describes one publishing format of a platform.
type Format struct {
	Ratio          string // "16:9", "9:16" or "1:1"
	MaxDuration    int    // seconds, 0 means unlimited
	TitleMax       int
	CaptionMax     int
	DescriptionMax int
}

// Config describes a platform's display metadata, formats and features.
type Config struct {
	Name         string
	Color        string
	Formats      map[string]Format
	Features     []string
	HashtagCount int // recommended count shown in the UI, 0 when not set
}

// HashtagLimits caps the number of generated hashtags per platform.
var HashtagLimits = map[models.Platform]int{
	models.PlatformYouTube:   15,
	models.PlatformTikTok:    30,
	models.PlatformInstagram: 30,
}

var configs = map[models.Platform]Config{
	models.PlatformYouTube: {
		Name:  "YouTube",
		Color: "#FF0000",
		Formats: map[string]Format{
			"long":   {Ratio: "16:9", TitleMax: 100, DescriptionMax: 5000},
			"shorts": {Ratio: "9:16", MaxDuration: 60, TitleMax: 100},
		},
		Features: []string{"chapters", "cards", "endscreen", "playlists"},
	},
	models.PlatformTikTok: {
		Name:  "TikTok",
		Color: "#000000",
		Formats: map[string]Format{
			"video": {Ratio: "9:16", MaxDuration: 180, CaptionMax: 2200},
		},
		Features:     []string{"hashtags", "sounds", "duet", "stitch"},
		HashtagCount: 5,
	},
	models.PlatformInstagram: {
		Name:  "Instagram Reels",
		Color: "#E4405F",
		Formats: map[string]Format{
			"reels": {Ratio: "9:16", MaxDuration: 90, CaptionMax: 2200},
		},
		Features:     []string{"hashtags", "audio", "collab", "remix"},
		HashtagCount: 30,
	},
}

// For returns the configuration for the given platform.
func For(p models.Platform) Config {
	return configs[p]
}

// RecommendedFormat picks the format a video of the given duration (seconds)
// should use on the platform. YouTube is the only platform with more than one
// format; everything else has a single entry.
func RecommendedFormat(p models.Platform, duration int) string {
	if p == models.PlatformYouTube {
		if duration <= 60 {
			return "shorts"
		}
		return "long"
	}
	for name := range configs[p].Formats {
		return name
	}
	return ""
}
