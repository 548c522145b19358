// Package prompts builds the natural-language prompts sent to the script
// generation provider. Templates exist in German and English and adapt to the
// chosen style, platform and duration.
package prompts

import (
	"fmt"
	"strings"

	"channelmagic/models"
)

// ScriptParams carries everything the script prompt needs. Niche and
// TargetAudience are optional.
type ScriptParams struct {
	Topic          string
	Style          models.ContentStyle
	Duration       string // "short" or "long"
	Platform       models.Platform
	Locale         string // "de" or "en"
	Niche          string
	TargetAudience string
}

var styleInstructions = map[string]map[models.ContentStyle]string{
	"de": {
		models.StyleEducational:   "informativ und lehrreich, mit klaren Fakten und Erklärungen",
		models.StyleEntertaining:  "unterhaltsam und humorvoll, mit persönlichen Anekdoten",
		models.StyleInspirational: "motivierend und inspirierend, mit emotionalen Momenten",
	},
	"en": {
		models.StyleEducational:   "informative and educational, with clear facts and explanations",
		models.StyleEntertaining:  "entertaining and humorous, with personal anecdotes",
		models.StyleInspirational: "motivating and inspiring, with emotional moments",
	},
}

var platformHints = map[string]map[models.Platform]string{
	"de": {
		models.PlatformYouTube:   "Längere, ausführliche Erklärungen sind ok. Nutze Chapter-Struktur.",
		models.PlatformTikTok:    "Schnell, trend-fokussiert, direkt auf den Punkt. Hook in ersten 2 Sekunden!",
		models.PlatformInstagram: "Ästhetisch, community-fokussiert. Frage am Ende zur Interaktion.",
	},
	"en": {
		models.PlatformYouTube:   "Longer, detailed explanations are ok. Use chapter structure.",
		models.PlatformTikTok:    "Fast, trend-focused, straight to the point. Hook in first 2 seconds!",
		models.PlatformInstagram: "Aesthetic, community-focused. Ask a question at the end for engagement.",
	},
}

// ScriptPrompt renders the full prompt for the given parameters.
func ScriptPrompt(p ScriptParams) string {
	if p.Locale == "de" {
		return germanPrompt(p)
	}
	return englishPrompt(p)
}

func germanPrompt(p ScriptParams) string {
	var b strings.Builder

	niche := ""
	if p.Niche != "" {
		niche = fmt.Sprintf(" im Bereich %s", p.Niche)
	}
	durationText := "5-8 Minuten"
	mainPoints := "3-5 ausführliche Punkte"
	if p.Duration == "short" {
		durationText = "60 Sekunden (Short/Reel)"
		mainPoints = "2-3 kurze Punkte"
	}

	fmt.Fprintf(&b, "Du bist ein erfahrener %s Content Creator%s.\n\n",
		strings.ToUpper(string(p.Platform)), niche)
	fmt.Fprintf(&b, "Erstelle ein vollständiges Video-Script, das %s ist.\n\n",
		styleInstructions["de"][p.Style])
	fmt.Fprintf(&b, "THEMA: %s\nLÄNGE: %s\nSPRACHE: Deutsch\n", p.Topic, durationText)
	if p.TargetAudience != "" {
		fmt.Fprintf(&b, "ZIELGRUPPE: %s\n", p.TargetAudience)
	}
	fmt.Fprintf(&b, "\nPLATTFORM-HINWEIS: %s\n\n", platformHints["de"][p.Platform])
	fmt.Fprintf(&b, `STRUKTUR:
1. **HOOK** (erste 3 Sekunden): Eine provokante Frage oder überraschende Aussage
2. **INTRO** (10-15 Sek): Kurze Vorstellung des Themas
3. **HAUPTTEIL**: %s
4. **CALL-TO-ACTION**: Aufforderung zum Liken/Abonnieren/Kommentieren
5. **OUTRO**: Kurzer Abschluss

Formatiere das Script so:
- Schreibe gesprochenen Text (kein Stichpunkte)
- Füge [SZENENANWEISUNG] für visuelle Hinweise hinzu
- Markiere wichtige Wörter zum **Betonen**

Beginne jetzt mit dem Script:`, mainPoints)

	return b.String()
}

func englishPrompt(p ScriptParams) string {
	var b strings.Builder

	niche := ""
	if p.Niche != "" {
		niche = fmt.Sprintf(" in the %s niche", p.Niche)
	}
	durationText := "5-8 minutes"
	mainPoints := "3-5 detailed points"
	if p.Duration == "short" {
		durationText = "60 seconds (Short/Reel)"
		mainPoints = "2-3 short points"
	}

	fmt.Fprintf(&b, "You are an experienced %s content creator%s.\n\n",
		strings.ToUpper(string(p.Platform)), niche)
	fmt.Fprintf(&b, "Create a complete video script that is %s.\n\n",
		styleInstructions["en"][p.Style])
	fmt.Fprintf(&b, "TOPIC: %s\nLENGTH: %s\nLANGUAGE: English\n", p.Topic, durationText)
	if p.TargetAudience != "" {
		fmt.Fprintf(&b, "TARGET AUDIENCE: %s\n", p.TargetAudience)
	}
	fmt.Fprintf(&b, "\nPLATFORM NOTE: %s\n\n", platformHints["en"][p.Platform])
	fmt.Fprintf(&b, `STRUCTURE:
1. **HOOK** (first 3 seconds): A provocative question or surprising statement
2. **INTRO** (10-15 sec): Brief introduction to the topic
3. **MAIN CONTENT**: %s
4. **CALL-TO-ACTION**: Ask to like/subscribe/comment
5. **OUTRO**: Brief closing

Format the script like this:
- Write spoken text (not bullet points)
- Add [SCENE DIRECTION] for visual hints
- Mark important words to **emphasize**

Start the script now:`, mainPoints)

	return b.String()
}
