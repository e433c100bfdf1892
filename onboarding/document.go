package onboarding

import (
	"regexp"
	"strings"
	"time"

	"foundryos/backend/models"
)

var whitespace = regexp.MustCompile(`\s+`)

// CovenantDocument renders the plain-text agreement a founder can download
// after finalization.
func CovenantDocument(r models.OnboardingRecord, c models.Covenant, now time.Time) string {
	var b strings.Builder
	b.WriteString("FOUNDRY OS COVENANT AGREEMENT\n\n")
	b.WriteString("Founder: " + r.FounderProfile.Name + "\n")
	b.WriteString("Covenant: " + c.Name + "\n")
	b.WriteString("Project: " + r.StartupDetails.ProjectName + "\n")
	b.WriteString("Date: " + now.Format("January 2, 2006") + "\n\n")
	b.WriteString("I commit to building my venture according to the " + c.Name + " principles:\n")
	for _, p := range c.Principles {
		b.WriteString("• " + p.Name + "\n")
	}
	b.WriteString("\nGuiding Scripture/Quote:\n")
	b.WriteString(c.CoreVerse.String() + "\n\n")
	b.WriteString("Digital Signature: " + r.DigitalSignature + "\n")
	return b.String()
}

func CovenantFilename(r models.OnboardingRecord) string {
	name := strings.TrimSpace(r.FounderProfile.Name)
	if name == "" {
		name = "Founder"
	}
	return whitespace.ReplaceAllString(name, "_") + "_Covenant.txt"
}
