// Package kit builds the marketing-kit prompt sent to the text model and
// parses the model output back into a headline and named sections.
package kit

import (
	"fmt"
	"strings"
)

// Delimiter separates the headline from the marketing text kit in the
// model output.
const Delimiter = "--- MARKETING TEXT KIT ---"

// Section is one titled block of the marketing text kit.
type Section struct {
	Title string `json:"title"` // Header text without the leading "## "
	Body  string `json:"body"`  // Markdown body until the next header
}

// Brief holds the inputs the prompt is built from.
type Brief struct {
	ProductName  string
	Description  string
	Tone         string
	Audience     string
	CallToAction string
}

// BuildPrompt renders the master prompt for the given brief. The output
// contract (delimiter, "## " section headers) must stay in sync with
// SplitKit and Sections.
func BuildPrompt(b Brief) string {
	var sb strings.Builder

	sb.WriteString("**Persona:** You are a Senior Product Marketing Manager at a leading enterprise software company. ")
	sb.WriteString("You specialize in creating long-form, in-depth, and highly persuasive content for a sophisticated technical and business audience. ")
	sb.WriteString("Your goal is to educate, build trust, and drive consideration.\n\n")

	sb.WriteString("**Task:** Generate an extremely elaborate and detailed marketing kit. ")
	sb.WriteString("Each of the following sections must be at least 500 words long. ")
	sb.WriteString("Invent a plausible, detailed case study for a fictional company and weave it throughout all content pieces as a concrete example.\n\n")

	sb.WriteString("**Product Details:**\n")
	fmt.Fprintf(&sb, "- Name: %s\n", b.ProductName)
	fmt.Fprintf(&sb, "- Description: %s\n\n", b.Description)

	sb.WriteString("**Creative Brief:**\n")
	fmt.Fprintf(&sb, "- Tone: %s\n", b.Tone)
	fmt.Fprintf(&sb, "- Target Audience: %s\n", b.Audience)
	fmt.Fprintf(&sb, "- Call to Action: %s\n\n", b.CallToAction)

	sb.WriteString("**Output Requirements:**\n")
	fmt.Fprintf(&sb, "Generate two distinct components, separated by '%s'.\n\n", Delimiter)

	sb.WriteString("**Component 1: The Strategic Headline**\n")
	sb.WriteString("A short, powerful headline that frames the product's strategic importance.\n\n")

	sb.WriteString("**Component 2: The Elaborate Marketing Text Kit (each section > 500 words)**\n")
	sb.WriteString("- `## Ad Copy & Talking Points`: two long-form ad variations plus a detailed list of key talking points for a sales team.\n")
	sb.WriteString("- `## LinkedIn Article`: a full-length article with a compelling title, an industry problem introduction, feature-driven body paragraphs, the case study, and a concluding call to action.\n")
	sb.WriteString("- `## Executive Email Briefing`: a long-form executive briefing with subject line, executive summary, challenge, solution, case study, and next steps.\n")
	sb.WriteString("- `## Social Media Deep Dive`: a 5-part deep-dive campaign outline with detailed posts and hashtags for the series.\n")

	return sb.String()
}

// SplitKit splits raw model output on the delimiter into headline and
// kit body. Asterisks are stripped from the headline so markdown
// emphasis does not leak into the display text. When the delimiter is
// missing the whole output is treated as the body with no headline.
func SplitKit(raw string) (headline, body string) {
	parts := strings.SplitN(raw, Delimiter, 2)
	if len(parts) < 2 {
		return "", strings.TrimSpace(raw)
	}

	headline = strings.TrimSpace(strings.ReplaceAll(parts[0], "*", ""))
	body = strings.TrimSpace(parts[1])
	return headline, body
}

// Sections parses the kit body into titled sections. The grammar: a line
// starting with "## " opens a section titled by the rest of the line;
// its body is everything until the next header line or end of input.
// Text before the first header is ignored.
func Sections(body string) []Section {
	var (
		sections []Section
		current  *Section
		buf      []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(strings.Join(buf, "\n"))
		sections = append(sections, *current)
		current = nil
		buf = nil
	}

	for _, line := range strings.Split(body, "\n") {
		if title, ok := strings.CutPrefix(line, "## "); ok {
			flush()
			current = &Section{Title: strings.TrimSpace(title)}
			continue
		}
		if current != nil {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}
