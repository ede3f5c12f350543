package content

import (
	"strings"

	"github.com/nleiva/contentscale/internal/catalog"
)

const briefHeader = `# 🌐 UNIVERSAL CONTENT GENERATION BRIEF - {kind}

## SECTION 1: GLOBAL INSTRUCTION
**You are an expert marketing content creator** who understands global and local markets, cultural nuances, and digital storytelling.

Generate content that aligns with: **{country}, {format}**

## SECTION 2: CONTEXT VARIABLES
- **Country:** {country}
- **Asset Type:** {asset}
- **Topic:** {topic}
- **Regional Tone:** {tone}

## SECTION 3: REGIONAL & CULTURAL ADAPTATION
{tone}

**Cultural Requirements:**
{requirements}`

const blogBrief = `## SECTION 4: BLOGPOST REQUIREMENTS
**Length:** 600–900 words
**Structure:**
1. **Title** - Localized and engaging for {country}
2. **Hook** - Compelling opening that resonates culturally
3. **Insight** - Main value proposition with {country} context
4. **Story/Example** - Relatable scenario for {country} audience
5. **CTA** - Clear call-to-action

**Include:**
- 1–2 image suggestions with descriptions
- Author name and bio (appropriate for {country})
- Cultural or contextual reference specific to {country}

**Style:** Educational, informative, or lifestyle-driven based on topic

## SECTION 5: REQUIRED OUTPUT ELEMENTS
Every output must contain:
✓ A Title that feels localized and relevant to {country}
✓ Images or visual suggestions with descriptions
✓ Author name and short bio appropriate for {country}
✓ Cultural or contextual reference (mention or nod to local insight, trend, or tradition)

## PROMPT FOR GENERATION
Create a blog post about "{topic}" for {country} audiences.
Follow the cultural tone, structure, and requirements outlined above.
Ensure authenticity, cultural relevance, and engagement for {country} readers.`

var socialBriefSections = [3]string{
	formatPost: `## SECTION 4: SOCIAL POST REQUIREMENTS
**Length:** 100–200 words
**Structure:**
1. **Hook** - Scroll-stopping opening
2. **Insight** - Value or entertainment
3. **CTA** - Clear call-to-action
4. **Hashtags** - Relevant to {country}

**Tone:** Conversational, platform-native, culturally adapted for {country}`,
	formatReel: `## SECTION 4: REEL / SHORT VIDEO REQUIREMENTS
**Length:** 15–30 seconds
**Format:** Scene-by-scene script or storyboard

**Include:**
- Suggested visuals relevant to {country}
- Captions and on-screen text
- Audio/music suggestions (trending in {country})
- Hook in first 3 seconds

**Tone:** Energetic, relatable, platform-native, culturally adapted for {country}`,
	formatStory: `## SECTION 4: INSTAGRAM STORY REQUIREMENTS
**Frames:** 3–5
**Frame 1:** Hook line / question that grabs attention
**Frame 2–3:** Core message or insight with {country} context
**Frame 4–5:** CTA or brand message

**Include:**
- Suggested imagery and visual direction for {country}
- Color palette recommendations
- Relevant hashtags and location tags
- Interactive elements (polls, questions, stickers)

**Tone:** Energetic, relatable, platform-native for {country}`,
}

const socialBriefFooter = `## SECTION 5: REQUIRED OUTPUT ELEMENTS
Every output must contain:
✓ Engaging caption localized for {country}
✓ Visual suggestions with descriptions
✓ Hashtags relevant to {country} and topic
✓ Cultural reference or nod to {country} trends

## PROMPT FOR GENERATION
Create {deliverable} about "{topic}" for {country} audiences.
Follow the cultural tone, structure, and platform requirements outlined above.
Ensure authenticity, cultural relevance, and high engagement potential for {country} Instagram users.`

const articleBrief = `## SECTION 4: ARTICLE REQUIREMENTS
**Length:** 800–1200 words
**Structure:**
1. **Title** - Newsworthy, localized for {country}
2. **Subheadings** - Clear section breaks
3. **Data/Quotes** - Statistics and expert perspectives
4. **Conclusion** - Summary and implications for {country}

**Include:**
- Statistics or data relevant to {country}
- Expert quotes (real or simulated, appropriate for {country})
- Visual data cues (charts, graphs suggestions)
- Author credentials appropriate for {country}

**Style:** Analytical, journalistic, authoritative

## SECTION 5: REQUIRED OUTPUT ELEMENTS
Every output must contain:
✓ Professional title for {country} readership
✓ Data points or statistics relevant to {country}
✓ Expert voice or authoritative perspective
✓ Visual suggestions for data representation
✓ Author name with journalistic credentials for {country}

## PROMPT FOR GENERATION
Create a long-form article about "{topic}" for {country} audiences.
Follow the journalistic tone, structure, and data-driven requirements outlined above.
Ensure credibility, cultural relevance, and analytical depth for {country} readers.`

const generalBrief = `## SECTION 4: REQUIRED OUTPUT ELEMENTS
Every output must contain:
✓ A Title that feels localized and relevant to {country}
✓ Content structured appropriately for {asset}
✓ Author name and bio appropriate for {country}
✓ Cultural or contextual reference specific to {country}

## PROMPT FOR GENERATION
Create {asset} content about "{topic}" for {country} audiences.
Follow the cultural tone and requirements outlined above.
Ensure authenticity, cultural relevance, and engagement for {country} audiences.`

var (
	localRequirements = `- Reference local insights, trends, or traditions relevant to {country}
- Use culturally resonant examples and metaphors
- Adapt tone to match {country} communication style
- Consider seasonal, social, or current events in {country}`
	socialRequirements = `- Use culturally resonant visuals and references for {country}
- Adapt tone to match {country} social media style
- Consider local trends, celebrations, or cultural moments
- Use appropriate emojis and hashtags for {country}`
	articleRequirements = `- Include data, statistics, or examples relevant to {country}
- Reference local experts, studies, or authoritative sources
- Adapt analytical style to match {country} preferences
- Consider journalistic standards and expectations in {country}`
)

// Brief builds the structured generation brief for a model: regional tone,
// format requirements and the final generation prompt.
func Brief(c *catalog.Catalog, topic, country, contentType string) string {
	name := c.CountryName(country)
	tone := c.RegionalTone(country)

	var kind, format, asset, requirements, body string
	switch CategoryOf(contentType) {
	case CategoryBlog:
		kind, format, asset = "BLOGPOST", "Blog Post Format", "Blog Post (600-900 words)"
		requirements, body = localRequirements, blogBrief
	case CategoryInstagram:
		f := formatOf(contentType)
		kinds := [3]string{formatPost: "SOCIAL POST", formatReel: "REEL", formatStory: "STORY"}
		assets := [3]string{formatPost: "Instagram Social Post", formatReel: "Instagram Reel / Short Video", formatStory: "Instagram Story"}
		deliverables := [3]string{formatPost: "an Instagram post", formatReel: "a Reel script", formatStory: "an Instagram Story sequence"}
		kind, format, asset = kinds[f], "Instagram "+f.label(), assets[f]
		requirements = socialRequirements
		body = socialBriefSections[f] + "\n\n" + fill(socialBriefFooter, "{deliverable}", deliverables[f])
	case CategoryArticle:
		kind, format, asset = "ARTICLE", "Long-form Article", "Article (800-1200 words)"
		requirements, body = articleRequirements, articleBrief
	default:
		kind, format, asset = "GENERAL", contentType, contentType
		requirements, body = localRequirements, generalBrief
	}

	text := briefHeader + "\n\n" + body
	return strings.TrimSpace(fill(text,
		"{kind}", kind,
		"{format}", format,
		"{asset}", asset,
		"{requirements}", fill(requirements, "{country}", name),
		"{country}", name,
		"{topic}", topic,
		"{tone}", tone,
	))
}
