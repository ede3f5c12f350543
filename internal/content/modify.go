package content

import (
	"fmt"
	"regexp"
	"strings"
)

// Modification names a follow-up edit rule.
type Modification string

const (
	ModShorter Modification = "shorter"
	ModLonger  Modification = "longer"
	ModFocus   Modification = "focus"
	ModAdd     Modification = "add"
	ModRemove  Modification = "remove"
	ModTone    Modification = "tone"
)

type editFunc func(e edit) string

// modificationRules is evaluated in order; the first rule whose keyword
// occurs in the instruction wins.
var modificationRules = []struct {
	name     Modification
	keywords []string
	apply    editFunc
}{
	{ModShorter, []string{"shorter", "brief", "concise"}, shorten},
	{ModLonger, []string{"longer", "more detail", "expand"}, lengthen},
	{ModFocus, []string{"focus on", "emphasize", "highlight"}, focus},
	{ModAdd, []string{"add", "include"}, addSection},
	{ModRemove, []string{"remove", "without", "exclude"}, removeTopic},
	{ModTone, []string{"tone", "style", "professional", "casual"}, changeTone},
}

var (
	focusPrefixes  = regexp.MustCompile(`focus on |emphasize |highlight |more about |tell me about `)
	addPrefixes    = regexp.MustCompile(`add |include |also add |also include |talk about |mention `)
	removePrefixes = regexp.MustCompile(`remove |without |exclude |don't include |skip |omit `)
	numberedLine   = regexp.MustCompile(`^\d+\.`)
)

// edit is the parsed input every modification rule works from.
type edit struct {
	original    string
	instruction string
	country     string
	typeName    string
	lines       []string // non-blank lines of original
	heading     string
	topic       string
}

func newEdit(previous, instruction, countryName, typeName string) edit {
	var lines []string
	for _, line := range strings.Split(previous, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	e := edit{
		original:    previous,
		instruction: instruction,
		country:     countryName,
		typeName:    typeName,
		lines:       lines,
	}
	if len(lines) > 0 {
		e.heading = lines[0]
		e.topic = stripHeading(lines[0])
	}
	return e
}

// Match reports which modification rule applies to instruction, if any.
func Match(instruction string) (Modification, bool) {
	lower := strings.ToLower(instruction)
	for _, rule := range modificationRules {
		if containsAny(lower, rule.keywords) {
			return rule.name, true
		}
	}
	return "", false
}

// Modify rewrites previous according to instruction by line slicing and
// filtering. It reports false when previous is empty or no rule matches.
func Modify(previous, instruction, countryName, typeName string) (string, bool) {
	if strings.TrimSpace(previous) == "" {
		return previous, false
	}
	lower := strings.ToLower(instruction)
	for _, rule := range modificationRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		out := rule.apply(newEdit(previous, instruction, countryName, typeName))
		if rule.name == ModShorter {
			out = truncateLines(out, countLines(previous))
		}
		return out, true
	}
	return previous, false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// truncateLines keeps at most n lines of s.
func truncateLines(s string, n int) string {
	if countLines(s) <= n {
		return s
	}
	lines := strings.Split(s, "\n")
	return strings.Join(lines[:n], "\n")
}

func isListItem(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "-") || numberedLine.MatchString(t)
}

func isSection(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "##") && !strings.Contains(line, "[Generated")
}

func (e edit) listItems(limit int) []string {
	var out []string
	for _, line := range e.lines {
		if len(out) == limit {
			break
		}
		if isListItem(line) {
			out = append(out, line)
		}
	}
	return out
}

func (e edit) sections(limit int) []string {
	var out []string
	for _, line := range e.lines {
		if len(out) == limit {
			break
		}
		if isSection(line) {
			out = append(out, line)
		}
	}
	return out
}

func subject(instruction string, prefixes *regexp.Regexp) string {
	return strings.TrimSpace(prefixes.ReplaceAllString(strings.ToLower(instruction), ""))
}

func shorten(e edit) string {
	points := strings.Join(e.listItems(5), "\n")
	if points == "" {
		points = fmt.Sprintf("- Core information about %s\n- Tailored for %s market\n- Essential details and highlights", e.topic, e.country)
	}

	var covered []string
	for _, s := range e.sections(3) {
		covered = append(covered, "- "+stripHeading(s))
	}
	sections := strings.Join(covered, "\n")
	if sections == "" {
		sections = "- Introduction\n- Key benefits\n- Conclusion"
	}

	return fmt.Sprintf(`%s

## Summary

This condensed version focuses on the essential information for %s audiences.

### Key Points

%s

### Main Sections Covered

%s

---

*Concise %s for %s market*`, e.heading, e.country, points, sections, e.typeName, e.country)
}

func lengthen(e edit) string {
	return fill(`{original}

## Additional Context

This expanded version provides more detailed information about {topic} for the {country} market.

### Deeper Insights

{topic} encompasses various aspects that are important for {country} audiences:

- **In-Depth Analysis**: Comprehensive examination of key factors
- **Market-Specific Context**: How this applies specifically to {country}
- **Practical Applications**: Real-world implementation strategies
- **Best Practices**: Proven approaches for {country} market

### Extended Discussion

For {country} audiences, understanding the nuances of {topic} is crucial. This includes:

1. **Detailed Background**: Historical context and current trends in {country}
2. **Implementation Strategies**: Step-by-step guidance tailored for {country}
3. **Case Studies**: Examples from {country} market
4. **Future Outlook**: Projections and opportunities for {country}

### Regional Considerations

When applying {topic} in {country}, it's important to consider:

- Local market dynamics and consumer behavior
- Cultural preferences and expectations
- Regulatory environment and compliance requirements
- Competitive landscape in {country}

## Additional Resources

For {country} audiences seeking more information about {topic}:
- Further research and studies relevant to {country}
- Expert insights from {country} industry leaders
- Community discussions and forums

---

*Extended {type} for {country} market with additional detail*`,
		"{original}", e.original, "{topic}", e.topic, "{country}", e.country, "{type}", e.typeName)
}

func focus(e edit) string {
	area := subject(e.instruction, focusPrefixes)

	var relevant []string
	for _, line := range e.lines {
		if len(relevant) == 3 {
			break
		}
		if strings.Contains(strings.ToLower(line), area) {
			relevant = append(relevant, line)
		}
	}
	evidence := strings.Join(relevant, "\n")
	if evidence == "" {
		evidence = fmt.Sprintf("- Central to understanding %s\n- Particularly relevant for %s market\n- Key differentiator and success factor", e.topic, e.country)
	}

	return fill(`{heading}

## Focused Analysis: {Area}

This version emphasizes **{area}** as it relates to {topic} for {country} audiences.

### Why {Area} Matters

When considering {topic} in the {country} market, {area} plays a crucial role:

{evidence}

### In-Depth Look at {Area}

For {country} audiences, {area} represents an important aspect of {topic}:

- **Core Importance**: How {area} impacts {topic} in {country}
- **Regional Context**: {area} considerations specific to {country}
- **Practical Impact**: Real-world implications of {area}
- **Best Practices**: Optimal approaches to {area} in {country}

### Key Takeaways

Understanding {area} in the context of {topic} helps {country} audiences:

1. Make better-informed decisions
2. Align with local market expectations
3. Maximize value and effectiveness
4. Stay ahead of regional trends

---

*Focused {type} for {country} | Emphasis on: {area}*`,
		"{heading}", e.heading, "{Area}", capitalize(area), "{area}", area, "{topic}", e.topic,
		"{country}", e.country, "{evidence}", evidence, "{type}", e.typeName)
}

func addSection(e edit) string {
	addition := subject(e.instruction, addPrefixes)
	return fill(`{original}

## Additional Topic: {Addition}

Based on your request, here's additional information about **{addition}** in relation to {topic}:

### Overview of {Addition}

{Addition} is an important consideration for {country} audiences exploring {topic}.

### Key Aspects

- **Relevance**: How {addition} connects to {topic}
- **{country} Context**: Specific implications for the {country} market
- **Practical Value**: Real-world applications and benefits
- **Integration**: How {addition} fits with the main discussion

### Why This Matters for {country}

Understanding {addition} alongside {topic} provides {country} audiences with:

1. A more complete picture of the subject matter
2. Additional context for decision-making
3. Market-specific insights
4. Actionable information

---

*Updated {type} with additional content about: {addition}*`,
		"{original}", e.original, "{Addition}", capitalize(addition), "{addition}", addition,
		"{topic}", e.topic, "{country}", e.country, "{type}", e.typeName)
}

func removeTopic(e edit) string {
	target := subject(e.instruction, removePrefixes)

	var kept []string
	for _, line := range e.lines {
		if !strings.Contains(strings.ToLower(line), target) {
			kept = append(kept, line)
		}
	}
	body := ""
	if len(kept) > 1 {
		body = strings.Join(kept[1:min(15, len(kept))], "\n")
	}

	return fill(`{heading}

## Revised Content

This version has been updated based on your request to exclude content about **{target}**.

{body}

## Summary

This streamlined version of {topic} for {country} focuses on the essential information, with {target} excluded as requested.

---

*Refined {type} for {country} | Removed: {target}*`,
		"{heading}", e.heading, "{target}", target, "{body}", body, "{topic}", e.topic,
		"{country}", e.country, "{type}", e.typeName)
}

func changeTone(e edit) string {
	lower := strings.ToLower(e.instruction)
	points := e.listItems(3)
	var sections []string
	for _, s := range e.sections(3) {
		sections = append(sections, stripHeading(s))
	}

	if containsAny(lower, []string{"casual", "friendly", "conversational"}) {
		return casualTone(e, sections, points)
	}
	return professionalTone(e, sections, points)
}

func casualTone(e edit, sections, points []string) string {
	var parts []string
	for _, s := range sections {
		parts = append(parts, fmt.Sprintf("**%s**: This is an important part of %s that matters for %s audiences.", s, e.topic, e.country))
	}
	breakdown := strings.Join(parts, "\n\n")
	if breakdown == "" {
		breakdown = fmt.Sprintf("%s is something that really makes a difference for people in %s. Let's break down why it's worth your attention.", e.topic, e.country)
	}
	keyPoints := strings.Join(points, "\n")
	if keyPoints == "" {
		keyPoints = fmt.Sprintf("- It's relevant to %s market\n- It's practical and useful\n- It's worth understanding", e.country)
	}

	return fill(`# {topic}

Hey there! 👋

Let's talk about {topic} - especially how it relates to folks in {country}.

## Here's What You Need to Know

{breakdown}

### The Key Points

{points}

## Bottom Line

{topic} is worth paying attention to, especially if you're in {country}. It's straightforward, practical, and designed with your needs in mind.

---

*Casual, friendly {type} for {country} market*`,
		"{topic}", e.topic, "{country}", e.country, "{breakdown}", breakdown,
		"{points}", keyPoints, "{type}", e.typeName)
}

func professionalTone(e edit, sections, points []string) string {
	var parts []string
	for _, s := range sections {
		parts = append(parts, fmt.Sprintf("### %s\n\nThis aspect of %s requires careful consideration within the %s market context.", s, e.topic, e.country))
	}
	findings := strings.Join(parts, "\n\n")
	if findings == "" {
		findings = fmt.Sprintf("### Market Analysis\n\n%s demonstrates relevance to %s stakeholders through multiple dimensions.", e.topic, e.country)
	}
	evidence := strings.Join(points, "\n")
	if evidence == "" {
		evidence = fmt.Sprintf("- Demonstrated value in %s market\n- Alignment with regional requirements\n- Proven effectiveness and reliability", e.country)
	}

	return fill(`{heading}

## Executive Overview

This document presents a professional analysis of {topic} for the {country} market, designed for stakeholders and decision-makers.

## Strategic Context

{topic} represents a significant area of focus for organizations and individuals in {country}. This professional assessment provides the analytical framework for informed decision-making.

## Key Findings

{findings}

### Supporting Evidence

{evidence}

## Strategic Recommendations

For {country} organizations and professionals:

1. **Assessment**: Evaluate {topic} within your specific context
2. **Planning**: Develop implementation strategies aligned with {country} market conditions
3. **Execution**: Apply best practices tailored to {country}
4. **Measurement**: Track outcomes and adjust approach as needed

## Conclusion

This professional analysis of {topic} provides {country} stakeholders with the information necessary for strategic decision-making.

---

*Professional {type} for {country} market*`,
		"{heading}", e.heading, "{topic}", e.topic, "{country}", e.country,
		"{findings}", findings, "{evidence}", evidence, "{type}", e.typeName)
}
