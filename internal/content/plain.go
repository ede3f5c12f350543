package content

import (
	"strconv"
	"unicode/utf8"

	"github.com/nleiva/contentscale/internal/catalog"
)

const emailLayout = `**Subject Line:** Important Information About {topic}

---

## Email Body

Hello,

We're excited to share valuable information about {topic}, specifically for our {country} audience.

**Key Highlights:**

📌 Relevant to {country} market
📌 Tailored content for you
📌 Important insights and information
📌 Actionable takeaways

**What This Means for You**

{topic} is an important topic for our {country} customers. We've created this content specifically with your needs in mind.

[Call to Action Button]

Best regards,
The Team

---

*Email content generated for {country} market in {language}*`

const smsLayout = `**Message:**

{topic} - Important update for {country} customers. Learn more at [link]

---

*SMS content - {country} market*
*Character count: {count}*`

// smsOverhead is the fixed length of the SMS body around topic and country.
const smsOverhead = 60

const articleLayout = `# {Topic}

*A {country} market report | {language}*

{intro}

{first}

{second}

{third}

{conclusion}

---

*{type} prepared for {country} readers | {language}*

**Byline:** {author}, Contributing Analyst | {country}`

const defaultLayout = `## {topic}

**Content Type:** {type}
**Target Market:** {country}
**Language:** {language}

### Overview

This content about "{topic}" has been created specifically for {country} audiences, taking into account local preferences and cultural context.

### Key Information

- **Topic**: {topic}
- **Market**: {country}
- **Content Format**: {type}
- **Target Audience**: {country} consumers

### Main Content

{topic} is presented here in a format suitable for {country} audiences. The content has been tailored to match local expectations and preferences.

**Important Points:**
1. Culturally relevant for {country}
2. Appropriate content format: {type}
3. Localized for {country} market
4. Available in {language}

---

*Generated {type} for {country} market | {language}*`

func renderEmail(r Request, country catalog.Country) string {
	return fill(emailLayout, "{topic}", r.Topic, "{country}", country.Name, "{language}", r.Language)
}

func renderSMS(r Request, country catalog.Country) string {
	count := smsOverhead + utf8.RuneCountInString(r.Topic) + utf8.RuneCountInString(country.Name)
	return fill(smsLayout, "{topic}", r.Topic, "{country}", country.Name, "{count}", strconv.Itoa(count))
}

// renderArticle reuses the blog section bodies under a report framing.
func renderArticle(r Request, country catalog.Country, typeName string) string {
	vars := blogVars(r, country, typeName)
	sections := blogSectionsByTopic[TopicOf(r.Topic)]
	return fill(articleLayout,
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
	)
}

func renderDefault(r Request, country catalog.Country, typeName string) string {
	return fill(defaultLayout,
		"{topic}", r.Topic,
		"{country}", country.Name,
		"{type}", typeName,
		"{language}", r.Language,
	)
}
