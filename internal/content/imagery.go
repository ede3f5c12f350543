package content

import (
	"regexp"
	"sort"
	"strings"
)

// ImageIdea is a suggested visual to accompany generated copy.
type ImageIdea struct {
	Title       string
	Description string
	Keywords    []string
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true, "would": true,
	"should": true, "could": true, "may": true, "might": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "it": true, "its": true,
	"they": true, "them": true, "their": true, "we": true, "our": true, "you": true,
	"your": true, "market": true, "content": true, "generated": true,
	"provides": true, "includes": true, "consumers": true, "audiences": true,
}

var fallbackKeywords = []string{"professional", "content", "visual", "modern", "quality"}

var (
	headingLine     = regexp.MustCompile(`(?m)^#+\s+(.+)$`)
	capitalizedRun  = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)
)

// Keywords returns up to five frequent terms drawn from the headings and
// capitalized phrases of content and from the topic itself.
func Keywords(content, topic string) []string {
	var words []string
	for _, m := range headingLine.FindAllStringSubmatch(content, -1) {
		words = append(words, strings.Fields(strings.ToLower(m[1]))...)
	}
	for _, w := range capitalizedRun.FindAllString(content, -1) {
		words = append(words, strings.ToLower(w))
	}
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		if len(w) > 3 && !stopWords[w] {
			words = append(words, w)
		}
	}

	freq := make(map[string]int)
	var order []string
	for _, w := range words {
		cleaned := nonAlphanumeric.ReplaceAllString(strings.ToLower(w), "")
		if len(cleaned) <= 3 || stopWords[cleaned] {
			continue
		}
		if freq[cleaned] == 0 {
			order = append(order, cleaned)
		}
		freq[cleaned]++
	}
	if len(order) == 0 {
		return append([]string(nil), fallbackKeywords...)
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(order, func(i, j int) bool { return freq[order[i]] > freq[order[j]] })
	if len(order) > 5 {
		order = order[:5]
	}
	return order
}

var imageRules = []struct {
	keywords    []string
	title       string
	description string
}{
	{[]string{"ai", "artificial intelligence"}, "AI Neural Network Visualization",
		"A modern, abstract visualization showing interconnected neural nodes with glowing blue and purple connections, representing AI technology and machine learning processes."},
	{[]string{"tech", "software", "digital"}, "Modern Technology Workspace",
		"A clean, minimalist workspace featuring multiple monitors displaying code and dashboards, with modern lighting and tech equipment."},
	{[]string{"health", "wellness", "fitness"}, "Healthy Lifestyle Scene",
		"A bright, inviting image showing fresh vegetables, fruits, and fitness equipment arranged artistically on a clean surface with natural lighting."},
	{[]string{"business", "finance", "marketing"}, "Business Strategy Meeting",
		"Professional team collaborating around a modern conference table with charts, graphs, and digital displays showing business analytics and growth metrics."},
	{[]string{"food", "drink", "recipe", "cooking"}, "Gourmet Food Presentation",
		"Beautifully plated dish or artisanal beverage photographed from above with natural lighting, garnishes, and complementary ingredients arranged aesthetically."},
	{[]string{"travel", "adventure", "tourism", "vacation"}, "Stunning Travel Destination",
		"Breathtaking landscape or cityscape capturing the essence of travel and adventure, featuring iconic landmarks, natural beauty, or cultural scenes."},
	{[]string{"education", "learning", "training", "course"}, "Modern Learning Environment",
		"Engaging educational setting with students or professionals in a contemporary classroom or online learning setup, featuring technology and collaborative spaces."},
	{[]string{"environment", "nature", "sustainability", "eco"}, "Natural Environment Scene",
		"Pristine natural landscape showcasing environmental beauty, featuring lush greenery, clean water, or sustainable practices in harmony with nature."},
	{[]string{"design", "creative", "art"}, "Creative Design Process",
		"Inspiring creative workspace with design tools, sketches, color palettes, and artistic materials arranged to showcase the creative process."},
	{[]string{"remote", "work from home", "wfh"}, "Remote Work Setup",
		"Comfortable and productive home office setup with laptop, plants, natural light, and organized workspace demonstrating work-life balance."},
}

// ImageSuggestion picks a visual for topic. Matching is by substring, so
// short keywords such as "ai" also fire inside longer words.
func ImageSuggestion(topic, content string) ImageIdea {
	keywords := Keywords(content, topic)
	lower := strings.ToLower(topic)
	for _, rule := range imageRules {
		if containsAny(lower, rule.keywords) {
			return ImageIdea{Title: rule.title, Description: rule.description, Keywords: keywords}
		}
	}
	return ImageIdea{
		Title: "Visual Representation of " + topic,
		Description: `A professional, high-quality image that visually represents the key concepts and themes discussed in "` +
			topic + `", helping readers better understand and engage with the content.`,
		Keywords: keywords,
	}
}
