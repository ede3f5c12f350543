package content

import "github.com/nleiva/contentscale/internal/catalog"

type blogSections struct {
	intro, first, second, third, conclusion string
}

var nutritionists = phrases{"JP": "Yamamoto", "DE": "Schmidt", "FR": "Dubois", "BR": "Silva", "*": "Anderson"}

var healthBlog = blogSections{
	intro: "In today's fast-paced world, {country} consumers are increasingly focused on wellness and making informed health choices. {topic} has emerged as a topic of significant interest, particularly as people seek natural, effective solutions that fit their lifestyle.",
	first: `## Understanding the Science

Recent research has shed new light on this topic, with studies showing promising results for {country} consumers. Health professionals emphasize the importance of understanding both the benefits and considerations when exploring {topic}.

**Key Research Findings:**
- Clinical studies demonstrate measurable effects
- Natural ingredients align with consumer preferences
- Growing body of evidence supports traditional use
- Safety profiles meet {country} regulatory standards`,
	second: `## Real-World Applications

For {country} residents, integrating these insights into daily life doesn't have to be complicated. Here's what wellness experts recommend:

**Morning Routine:**
Start your day with mindful choices that support your health goals. Many {country} consumers report positive changes within 2-3 weeks of consistent practice.

**Throughout the Day:**
Maintain balance by listening to your body and adjusting as needed. What works in other markets may need slight adaptation for {country}'s unique climate and lifestyle patterns.`,
	third: `## Expert Perspectives

We spoke with Dr. {doctor}, a leading nutritionist in {country}, who shared: *"The key is consistency and quality. {country} consumers should look for products that meet local standards and align with their personal health objectives."*

**Consumer Success Stories:**
Thousands of {country} customers have shared their positive experiences, noting improvements in energy levels, overall well-being, and daily vitality.`,
	conclusion: `## Your Path Forward

Whether you're just beginning to explore {topic} or looking to deepen your understanding, the {country} market offers excellent resources and options.

**Next Steps:**
1. Consult with healthcare professionals familiar with {country} practices
2. Start with quality products from reputable {country} sources
3. Track your progress and adjust based on your individual response
4. Connect with the growing {country} community interested in wellness

*Remember: Individual results may vary. This content is for informational purposes and doesn't replace professional medical advice.*`,
}

var (
	celebrationCulture = phrases{
		"BR": "The vibrant, community-focused spirit means including music, dance, and plenty of socializing.",
		"JP": "Attention to detail and respect for tradition create harmonious, meaningful gatherings.",
		"DE": "Efficiency and quality matter: well-organized events with premium offerings impress guests.",
		"US": "Personal expression and spectacular moments make celebrations memorable and Instagram-worthy.",
		"*":  "Local customs and preferences shape successful events.",
	}
	celebrationTiming = phrases{
		"BR": "Late start times (9 PM or later) are common, with parties extending into early morning hours.",
		"JP": "Punctuality matters. Events typically start and end as scheduled, with careful attention to seasons.",
		"DE": "Precise scheduling is appreciated. Guests expect events to start and end as indicated.",
		"US": "Flexibility with timing, but strong emphasis on creating buzz-worthy moments for social sharing.",
		"*":  "Understanding local timing expectations ensures better attendance and engagement.",
	}
	celebrationFood = phrases{
		"BR": "- Abundant variety with options for grazing throughout the night\n- Signature cocktails featuring local ingredients\n- Multiple food stations encouraging mingling\n- Tropical fruits and fresh, colorful presentations",
		"JP": "- Beautifully presented dishes with attention to seasonality\n- Balance of traditional and contemporary options\n- Considerate portions showing restraint and elegance\n- Premium quality over quantity",
		"DE": "- High-quality ingredients, especially beer and meats\n- Hearty portions reflecting value and substance\n- Efficient service and well-organized flow\n- Traditional favorites alongside modern options",
		"*":  "- Variety to accommodate dietary preferences\n- Instagram-worthy presentation\n- Convenient serving styles\n- Balance of familiar and adventurous options",
	}
)

var celebrationBlog = blogSections{
	intro: "Celebrations bring people together, and in {country}, these moments hold special cultural significance. Whether planning an intimate gathering or a large-scale event, understanding {topic} helps create memorable experiences that resonate with local traditions and modern expectations.",
	first: `## Planning the Perfect {country} Celebration

**Cultural Considerations:**
In {country}, celebrations reflect unique values and traditions. {culture}

**Timing & Atmosphere:**
{timing}`,
	second: `## What {country} Guests Expect

**Food & Beverages:**
{food}

**Entertainment:**
Music and activities should reflect {country} tastes while encouraging connection and enjoyment.`,
	third: `## Making It Memorable

**The {country} Touch:**
Successful celebrations in {country} share common elements:
- Attention to local preferences and expectations
- Balance between tradition and innovation
- Comfortable atmosphere encouraging genuine connection
- Thoughtful details that show cultural awareness

**Budget Considerations:**
In {country}, typical celebration budgets vary, but quality always trumps quantity. Invest in elements that matter most to your guests.`,
	conclusion: `## Create Your Celebration

Ready to plan something special? {country} offers wonderful venues, vendors, and inspiration.

**Essential Checklist:**
✓ Confirm venue availability well in advance
✓ Source {country}-based suppliers who understand local preferences
✓ Plan entertainment that reflects your guests' cultural background
✓ Prepare for {country} weather and seasonal considerations
✓ Include personal touches that make your event unique

*Start planning 3-6 months ahead for best results and availability in {country}.*`,
}

var marketDynamics = phrases{
	"US": "Innovation and individuality drive choices, with consumers willing to pay premium prices for quality and convenience.",
	"DE": "Thoroughness and quality matter more than speed. Consumers research extensively before making decisions.",
	"JP": "Long-term relationships and trust outweigh short-term trends. Brand reputation carries significant weight.",
	"BR": "Social proof and community recommendations heavily influence adoption and success.",
	"*":  "Local preferences and values shape consumer behavior significantly.",
}

var genericBlog = blogSections{
	intro: "{Topic} represents an important consideration for {country} audiences. In this comprehensive guide, we'll explore the key aspects that matter most, backed by insights from {country} experts and real-world examples that resonate locally.",
	first: `## The {country} Context

Understanding {topic} in {country} requires looking beyond global trends to local nuances. Here's what makes the {country} market unique:

**Market Dynamics:**
{country} consumers approach this topic differently than other markets. {dynamics}

**Current Trends:**
Recent data from {country} shows growing interest and engagement, with industry experts predicting continued expansion in coming years.`,
	second: `## Practical Applications

For {country} consumers, here's how {topic} translates into real-world value:

**Key Benefits:**
- **Relevance:** Solutions tailored specifically for {country} market conditions
- **Accessibility:** Growing availability through {country}-based providers
- **Support:** Local customer service and {country}-specific resources
- **Community:** Connection with other {country} users and experiences

**Implementation Tips:**
Start small and scale based on results. What works in test phases often performs even better at full scale in {country}.`,
	third: `## Expert Insights

{country} professionals emphasize several critical factors for success:

**Quality Over Speed:**
Rushing implementation often leads to suboptimal results. Take time to understand {country}-specific requirements.

**Cultural Fit:**
Solutions that work globally need local adaptation. {country} consumers appreciate providers who understand their unique needs.

**Continuous Improvement:**
The {country} market evolves constantly. Stay informed about local developments and adjust accordingly.`,
	conclusion: `## Moving Forward

Whether you're new to {topic} or looking to optimize your approach, the {country} market offers excellent opportunities for those who understand local dynamics.

**Recommended Actions:**
1. Research {country}-specific providers and solutions
2. Connect with local experts who understand the market
3. Start with pilot programs before full rollout
4. Monitor results and adjust based on {country} feedback
5. Stay engaged with the {country} community

*Success in {country} comes from combining global best practices with local insight and cultural awareness.*`,
}

var blogSectionsByTopic = map[Topic]blogSections{
	TopicHealth:      healthBlog,
	TopicCelebration: celebrationBlog,
	TopicGeneric:     genericBlog,
}

const blogLayout = `## {Topic}: A {country} Perspective

{intro}

{first}

{second}

{third}

{conclusion}

---

*{type} crafted for {country} audiences | {language}*

**Author:** {author}, {authorTitle} | {country}`

// blogVars are the substitutions shared by every blog section.
func blogVars(r Request, country catalog.Country, typeName string) []string {
	return []string{
		"{Topic}", capitalize(r.Topic),
		"{topic}", r.Topic,
		"{country}", country.Name,
		"{type}", typeName,
		"{language}", r.Language,
		"{doctor}", nutritionists.in(country.Code),
		"{culture}", celebrationCulture.in(country.Code),
		"{timing}", celebrationTiming.in(country.Code),
		"{food}", celebrationFood.in(country.Code),
		"{dynamics}", marketDynamics.in(country.Code),
	}
}

func renderBlog(r Request, country catalog.Country, typeName string) string {
	vars := blogVars(r, country, typeName)
	sections := blogSectionsByTopic[TopicOf(r.Topic)]

	authorTitle := "Marketing Writer"
	if typeName == "Blog Post" {
		authorTitle = "Senior Content Specialist"
	}

	// Replacer makes a single pass, so topic text is never expanded again.
	return fill(blogLayout,
		"{intro}", fill(sections.intro, vars...),
		"{first}", fill(sections.first, vars...),
		"{second}", fill(sections.second, vars...),
		"{third}", fill(sections.third, vars...),
		"{conclusion}", fill(sections.conclusion, vars...),
		"{Topic}", capitalize(r.Topic),
		"{country}", country.Name,
		"{type}", typeName,
		"{language}", r.Language,
		"{author}", country.Byline,
		"{authorTitle}", authorTitle,
	)
}
