// Package hashtags generates platform-appropriate hashtags for a topic. It is
// a pure lookup-table categorizer: the topic (plus an optional script excerpt)
// is classified into one category by keyword matching, then platform-general
// tags, category tags, optional locale tags, and a few capitalized topic words
// are unioned and truncated to the platform cap.
package hashtags

import (
	"regexp"
	"strings"

	"channelmagic/internal/platforms"
	"channelmagic/models"
)

// categoryKeywords is ordered: the first category whose keyword matches wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"tech", []string{"tech", "software", "app", "computer", "phone", "digital", "ai", "ki", "programm", "code"}},
	{"gaming", []string{"game", "gaming", "spiel", "play", "stream", "esport"}},
	{"education", []string{"learn", "tutorial", "how to", "explain", "tipps", "lernen", "anleitung", "erklärt"}},
	{"entertainment", []string{"funny", "comedy", "lustig", "spaß", "unterhalt"}},
	{"business", []string{"business", "money", "geld", "marketing", "unternehm", "startup", "invest"}},
	{"fitness", []string{"fitness", "workout", "gym", "training", "sport", "health", "gesund"}},
	{"food", []string{"food", "cook", "recipe", "essen", "koch", "rezept", "backen"}},
	{"travel", []string{"travel", "trip", "reise", "urlaub", "adventure"}},
	{"music", []string{"music", "song", "musik", "band", "artist"}},
}

var pools = map[models.Platform]map[string][]string{
	models.PlatformYouTube: {
		"general":       {"YouTubeShorts", "Shorts", "Viral", "Trending", "MustWatch", "Subscribe"},
		"tech":          {"Tech", "Technology", "TechTips", "Gadgets", "Innovation", "Digital"},
		"gaming":        {"Gaming", "Gamer", "GamePlay", "VideoGames", "GamingCommunity"},
		"education":     {"Education", "Learning", "Tutorial", "HowTo", "Tips", "Explained"},
		"entertainment": {"Entertainment", "Fun", "Comedy", "Funny", "Lifestyle"},
		"business":      {"Business", "Entrepreneur", "Marketing", "Success", "Money"},
		"fitness":       {"Fitness", "Workout", "Health", "Gym", "FitLife", "Exercise"},
		"food":          {"Food", "Cooking", "Recipe", "Foodie", "Delicious", "Kitchen"},
		"travel":        {"Travel", "Adventure", "Explore", "Wanderlust", "TravelVlog"},
		"music":         {"Music", "Song", "MusicVideo", "Artist", "NewMusic"},
	},
	models.PlatformTikTok: {
		"general":       {"FYP", "ForYou", "ForYouPage", "Viral", "Trending", "TikTokViral"},
		"tech":          {"TechTok", "TechTips", "LearnOnTikTok", "Technology", "Gadgets"},
		"gaming":        {"GamerTok", "Gaming", "GameTok", "Gamer", "VideoGames"},
		"education":     {"LearnOnTikTok", "EduTok", "DidYouKnow", "Facts", "Tutorial"},
		"entertainment": {"Comedy", "Funny", "Entertainment", "Humor", "LOL"},
		"business":      {"BusinessTok", "MoneyTok", "Entrepreneur", "SideHustle"},
		"fitness":       {"FitTok", "Workout", "GymTok", "Fitness", "HealthTok"},
		"food":          {"FoodTok", "Recipe", "Cooking", "FoodTikTok", "Yummy"},
		"travel":        {"TravelTok", "TravelTikTok", "Adventure", "Explore"},
		"music":         {"MusicTok", "NewMusic", "Song", "Artist", "MusicVideo"},
	},
	models.PlatformInstagram: {
		"general":       {"Reels", "InstaReels", "Viral", "Trending", "Explore", "Instagram"},
		"tech":          {"TechReels", "Technology", "TechTips", "Gadgets", "Digital"},
		"gaming":        {"GamingReels", "Gamer", "Gaming", "VideoGames", "GamePlay"},
		"education":     {"Educational", "Learning", "Tips", "Tutorial", "HowTo"},
		"entertainment": {"Entertainment", "Funny", "Comedy", "Fun", "Lifestyle"},
		"business":      {"BusinessReels", "Entrepreneur", "Marketing", "Business"},
		"fitness":       {"FitnessReels", "Workout", "Gym", "Fitness", "Health"},
		"food":          {"FoodReels", "Foodie", "Recipe", "Cooking", "InstaFood"},
		"travel":        {"TravelReels", "Travel", "Wanderlust", "Adventure", "Explore"},
		"music":         {"MusicReels", "Music", "NewMusic", "Song", "Artist"},
	},
}

var germanTags = map[string][]string{
	"general":       {"Deutschland", "German", "Deutsch"},
	"tech":          {"TechnikDeutsch", "Digitalisierung"},
	"education":     {"Wissen", "Lernen", "Bildung"},
	"entertainment": {"Unterhaltung", "Lustig", "Spaß"},
	"business":      {"Unternehmer", "Erfolg", "Selbstständig"},
	"fitness":       {"FitDeutschland", "Training", "Gesundheit"},
	"food":          {"Kochen", "Rezept", "Lecker"},
	"travel":        {"Reisen", "Urlaub", "Abenteuer"},
}

var wordPattern = regexp.MustCompile(`^[a-zA-ZäöüÄÖÜß]+$`)

// DetectCategory classifies the topic (and optional script text) into one of
// the fixed categories, defaulting to "general" when nothing matches.
func DetectCategory(topic, script string) string {
	text := strings.ToLower(topic + " " + script)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.category
			}
		}
	}
	return "general"
}

// Generate produces up to the platform's cap of unique hashtags for the topic.
// Output order is stable: platform-general tags, category tags, locale tags,
// then topic-derived words.
func Generate(topic string, platform models.Platform, script, locale string) []string {
	category := DetectCategory(topic, script)
	pool, ok := pools[platform]
	if !ok {
		pool = pools[models.PlatformYouTube]
	}
	limit, ok := platforms.HashtagLimits[platform]
	if !ok {
		limit = 15
	}

	var tags []string
	seen := make(map[string]bool)
	add := func(list []string) {
		for _, tag := range list {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	add(pool["general"])
	add(pool[category])

	if locale == "de" {
		add(germanTags["general"])
		add(germanTags[category])
	}

	// Up to three capitalized topic words, alphabetic only, longer than 3 runes.
	// The three-word window is taken before the alphabetic filter, so a word
	// with punctuation uses up a slot without contributing a tag.
	count := 0
	for _, word := range strings.Fields(topic) {
		if count >= 3 {
			break
		}
		if len([]rune(word)) <= 3 {
			continue
		}
		count++
		word = capitalize(word)
		if wordPattern.MatchString(word) {
			add([]string{word})
		}
	}

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

func capitalize(word string) string {
	runes := []rune(word)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
