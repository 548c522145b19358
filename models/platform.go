package models

// Platform identifies a distribution target for a piece of content.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
)

// AllPlatforms lists every supported platform in display order.
var AllPlatforms = []Platform{PlatformYouTube, PlatformTikTok, PlatformInstagram}

// ValidPlatform reports whether p is one of the supported platforms.
func ValidPlatform(p Platform) bool {
	switch p {
	case PlatformYouTube, PlatformTikTok, PlatformInstagram:
		return true
	}
	return false
}
