package content

import (
	"strings"

	"github.com/nleiva/contentscale/internal/catalog"
)

type format int

const (
	formatPost format = iota
	formatReel
	formatStory
)

func formatOf(contentType string) format {
	switch contentType {
	case "instagram-reel":
		return formatReel
	case "instagram-story":
		return formatStory
	default:
		return formatPost
	}
}

func (f format) label() string {
	switch f {
	case formatReel:
		return "Reel"
	case formatStory:
		return "Story"
	default:
		return "Post"
	}
}

// socialCopy is one topic family of Instagram copy, indexed by format.
type socialCopy struct {
	caption [3]string
	visual  [3]string
	audio   phrases
}

var healthSocial = socialCopy{
	caption: [3]string{
		formatPost:  "{Topic}\n\n{hook}\n\n- Natural ingredients\n- Proven results\n- {country}-approved\n\n{cta}\n\n#HealthyLifestyle #Wellness #{tag}Health",
		formatReel:  "The truth about {topic}? It's simpler than you think.\n\n{boost} with these science-backed insights.\n\n{reelCta}\n\n#WellnessJourney #HealthyLiving #{tag}Wellness",
		formatStory: "POLL: Have you tried {topic}?\n\nTap to vote!\n\nStay tuned for results + expert tips\n\n#{tag}Health #WellnessTips",
	},
	visual: [3]string{
		formatPost:  "**Visual Concept:** Lifestyle photography\n- Hero image: Natural setting, {setting}\n- Composition: Product/concept as focal point, lifestyle context\n- Lighting: Natural, bright, inviting\n- {country} elements: Subtle local cultural touches",
		formatReel:  "**Visual Concept:** Clean, bright aesthetic with nature elements\n- Opening shot: Dynamic transition with product/concept reveal\n- Mid-section: Quick cuts showing daily wellness routine\n- Closing: Clear benefit statement with {country} context\n- Color palette: Fresh greens, warm earth tones, bright whites",
		formatStory: "**Visual Concept:** Interactive story sequence\n- Frame 1: Eye-catching statistic or question\n- Frame 2-3: Educational content with swipe-up prompts\n- Frame 4: Poll or quiz for engagement\n- Frame 5: CTA with link sticker\n- Design: Clean, minimal, on-brand colors",
	},
	audio: phrases{
		"US": "Trending upbeat pop or lo-fi beats - Check {country} trending sounds for maximum reach",
		"BR": "Brazilian pop, samba-influenced beats, or trending funk - Check {country} trending sounds for maximum reach",
		"JP": "Calming instrumental or J-pop trending audio - Check {country} trending sounds for maximum reach",
		"DE": "Electronic, house, or indie pop - Check {country} trending sounds for maximum reach",
		"*":  "Upbeat, positive trending audio - Check {country} trending sounds for maximum reach",
	},
}

var celebrationSocial = socialCopy{
	caption: [3]string{
		formatPost:  "Ready for {topic}?\n\n{vibes}\n\n{celebrate}\n\n#PartyVibes #{tag}Celebration #GoodTimes",
		formatReel:  "{TOPIC}\n\n{energy}\n\nSwipe to see how {country} does it best\n\n{tagCrew}\n\n#PartyTime #{tag}Vibes #Celebration",
		formatStory: "{TOPIC}\n\n{join}\n\nTap for details\n\n#{tag}Party",
	},
	visual: [3]string{
		formatPost:  "**Visual Concept:** Celebration lifestyle shot\n- Setting: {partySetting}\n- People: Friends enjoying, candid moments\n- Products: Naturally integrated\n- Mood: {mood}",
		formatReel:  "**Visual Concept:** High-energy, dynamic celebration footage\n- Opening: Bass drop with party reveal\n- Mid-section: Quick cuts of people enjoying, {cuts}\n- Closing: Group shot with strong CTA\n- Vibe: {vibe}",
		formatStory: "**Visual Concept:** Behind-the-scenes celebration content\n- Frame 1: Teaser - \"Something special coming...\"\n- Frame 2-3: Setup shots, preparations\n- Frame 4: Countdown or poll - \"Will you join?\"\n- Frame 5: Event details with link\n- Style: Authentic, spontaneous, FOMO-inducing",
	},
	audio: phrases{
		"BR": "Trending Brazilian funk, sertanejo, or pagode",
		"US": "Pop hits, dance tracks, or viral sounds",
		"JP": "J-pop, trending city pop, or upbeat tracks",
		"*":  "Upbeat party music or trending celebration sounds",
	},
}

var genericSocial = socialCopy{
	caption: [3]string{
		formatPost:  "{Topic}\n\n{know}\n\n{like}\n\n#{topicTag} #{tag}Community",
		formatReel:  "{topic} explained in 30 seconds\n\n{facts} {country} edition\n\nSave this for later!\n\n#{topicTag} #{tag}Content #Learn",
		formatStory: "{TOPIC}\n\nSwipe up to learn more\n\n#{tag} #KnowledgeSharing",
	},
	visual: [3]string{
		formatPost:  "**Visual Concept:** Informative carousel or single\n- Layout: Clean, structured, easy to read\n- Elements: Charts, infographics, or lifestyle integration\n- Branding: Subtle, professional\n- {country} touch: Local references or examples",
		formatReel:  "**Visual Concept:** Educational, clean presentation\n- Opening: Hook with question or surprising fact\n- Mid-section: Key points with text overlays\n- Closing: Summary and CTA\n- Style: Professional yet approachable, {country}-relevant visuals",
		formatStory: "**Visual Concept:** Information sequence\n- Frame 1: Attention-grabbing stat or question\n- Frame 2-3: Educational slides with key points\n- Frame 4: Interactive element (quiz/poll)\n- Frame 5: Resource link or CTA\n- Design: Clean, readable, branded",
	},
	audio: phrases{
		"US": "Lo-fi, calm beats for educational content",
		"BR": "Smooth bossa nova or chill beats",
		"JP": "Calm instrumental or ambient sounds",
		"*":  "Gentle, non-distracting background music",
	},
}

var socialByTopic = map[Topic]socialCopy{
	TopicHealth:      healthSocial,
	TopicCelebration: celebrationSocial,
	TopicGeneric:     genericSocial,
}

// Country-conditional fragments of the social copy.
var socialPhrases = map[string]phrases{
	"{hook}":         {"US": "Your body deserves the best. Here is what the science says...", "BR": "Seu corpo merece o melhor. Veja o que a ciencia diz...", "JP": "Transform your health with science-backed insights", "*": "Discover what research reveals..."},
	"{cta}":          {"US": "Tag someone who needs to see this!", "BR": "Marca aquele amigo!", "JP": "Share with friends!", "*": "Share with your community!"},
	"{boost}":        {"US": "Boost your wellness game", "BR": "Transforme sua energia diaria", "JP": "Transform your daily health routine", "*": "Transform your daily routine"},
	"{reelCta}":      {"US": "Drop a comment if you are ready to level up!", "BR": "Comenta aqui qual seu maior desafio!", "JP": "Comment and share your thoughts!", "*": "Comment below if this resonates!"},
	"{setting}":      {"BR": "beach or tropical vibes", "JP": "zen garden or minimalist aesthetic", "DE": "modern, clean environment", "*": "bright, aspirational lifestyle"},
	"{vibes}":        {"BR": "Energia, diversao e muita vibe boa!", "US": "Good vibes, great company, unforgettable moments", "JP": "Create wonderful memories", "*": "Create memories that last forever"},
	"{celebrate}":    {"BR": "Bora celebrar?", "US": "Who is ready to celebrate?", "JP": "Celebrate together", "*": "Let us celebrate together!"},
	"{energy}":       {"BR": "A energia que voce precisa para celebrar!", "US": "The energy you need to celebrate right!", "JP": "Make the best moments", "*": "Make every moment count!"},
	"{tagCrew}":      {"BR": "Marca seus amigos!", "US": "Tag your crew!", "JP": "Tag your friends!", "*": "Tag your squad!"},
	"{join}":         {"BR": "BORA?", "US": "YOU IN?", "JP": "Join us?", "*": "JOIN US?"},
	"{partySetting}": {"BR": "Beach party or outdoor celebration", "US": "Backyard BBQ or rooftop party", "JP": "Seasonal gathering or refined event", "*": "Festive gathering"},
	"{mood}":         {"BR": "Energetic, colorful, joyful", "US": "Fun, aspirational, shareable", "JP": "Beautiful, harmonious, memorable", "*": "Warm, inviting, celebratory"},
	"{cuts}":         {"BR": "dancing, beach vibes", "US": "confetti, toasting, dancing", "JP": "lanterns, refined gathering", "*": "celebration highlights"},
	"{vibe}":         {"BR": "Carnival energy, vibrant colors", "US": "Bold, bright, Instagram-worthy", "JP": "Elegant, beautiful, harmonious", "*": "Fun, energetic, memorable"},
	"{know}":         {"US": "Here is what you need to know...", "BR": "Aqui esta o que voce precisa saber...", "JP": "Essential knowledge for you", "*": "Essential insights..."},
	"{like}":         {"US": "Double tap if this helped!", "BR": "Deixa o like se ajudou!", "JP": "Like if helpful!", "*": "Like if you found this useful!"},
	"{facts}":        {"US": "No fluff, just facts.", "BR": "Direto ao ponto!", "JP": "Simple and clear", "*": "Clear and concise."},
}

var technicalSpecs = [3]string{
	formatPost:  "- Format: Square (1:1) or Vertical (4:5)\n- Resolution: 1080x1080px or 1080x1350px\n- File type: JPG or PNG\n- File size: Under 1MB",
	formatReel:  "- Duration: 15-30 seconds\n- Format: 9:16 vertical video\n- Resolution: 1080x1920px\n- Frame rate: 30fps minimum",
	formatStory: "- Format: 9:16 vertical\n- Resolution: 1080x1920px\n- Duration: 3-15 seconds per frame\n- File size: Under 4MB per frame",
}

var socialOptimization = phrases{
	"BR": "- Post timing: 7-9 PM (peak engagement)\n- Use Portuguese naturally\n- Include local slang and expressions\n- Encourage community interaction",
	"US": "- Post timing: 11 AM - 1 PM or 7-9 PM ET\n- Hashtag strategy: Mix popular + niche\n- Encourage UGC and sharing\n- Include strong CTAs",
	"JP": "- Post timing: 12-1 PM or 7-9 PM JST\n- Respect for aesthetics and quality\n- Subtle, elegant messaging\n- Seasonal awareness",
	"DE": "- Post timing: 6-8 PM CET\n- Value quality over frequency\n- Authentic, trustworthy content\n- Clear, organized presentation",
	"*":  "- Research local peak times\n- Adapt language and tone\n- Use relevant local hashtags\n- Consider cultural context",
}

var socialCreators = phrases{
	"BR": "Ana Silva",
	"US": "Alex Johnson",
	"JP": "Yuki Tanaka",
	"DE": "Klaus Müller",
	"FR": "Marie Dubois",
	"*":  "Social Media Team",
}

const instagramLayout = `## Instagram {format} - {Topic}

### Caption

{caption}

---

### Visual Direction

{visual}{audio}

**Technical Specs:**
{specs}

**{country} Optimization:**
{optimization}

---

*{type} crafted for {country} Instagram audiences | {language}*

**Created by:** {creator}, Social Media Strategist | {country}`

func renderInstagram(r Request, country catalog.Country, typeName string) string {
	f := formatOf(r.ContentType)
	social := socialByTopic[TopicOf(r.Topic)]

	vars := []string{
		"{Topic}", capitalize(r.Topic),
		"{TOPIC}", strings.ToUpper(r.Topic),
		"{topic}", r.Topic,
		"{topicTag}", strings.Join(strings.Fields(r.Topic), ""),
		"{tag}", strings.Join(strings.Fields(country.Name), ""),
		"{country}", country.Name,
	}
	for key, p := range socialPhrases {
		vars = append(vars, key, p.in(country.Code))
	}

	audio := ""
	if f == formatReel {
		audio = "\n\n**Audio:** " + fill(social.audio.in(country.Code), "{country}", country.Name)
	}

	return fill(instagramLayout,
		"{format}", f.label(),
		"{Topic}", capitalize(r.Topic),
		"{caption}", fill(social.caption[f], vars...),
		"{visual}", fill(social.visual[f], vars...),
		"{audio}", audio,
		"{specs}", technicalSpecs[f],
		"{optimization}", socialOptimization.in(country.Code),
		"{country}", country.Name,
		"{type}", typeName,
		"{language}", r.Language,
		"{creator}", socialCreators.in(country.Code),
	)
}
