package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownCovenant = errors.New("unknown covenant")

// CovenantKind identifies one of the fixed covenants a founder can choose.
// The zero value means no covenant has been selected.
type CovenantKind string

const (
	CovenantGospel     CovenantKind = "gospel"
	CovenantEcological CovenantKind = "ecological"
	CovenantStoic      CovenantKind = "stoic"
)

var covenantKinds = []CovenantKind{CovenantGospel, CovenantEcological, CovenantStoic}

func CovenantKinds() []CovenantKind {
	out := make([]CovenantKind, len(covenantKinds))
	copy(out, covenantKinds)
	return out
}

func ParseCovenantKind(s string) (CovenantKind, error) {
	k := CovenantKind(s)
	if _, ok := covenantFor(k); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCovenant, s)
	}
	return k, nil
}

type Quote struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

func (q Quote) String() string {
	return fmt.Sprintf("%q - %s", q.Text, q.Reference)
}

type Principle struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Metrics     []string `json:"metrics"`
}

type Scripture struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Focus     string `json:"focus"`
}

// Covenant is read-only lookup data; nothing here is user input.
type Covenant struct {
	ID                CovenantKind `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Icon              string       `json:"icon"`
	CoreVerse         Quote        `json:"core_verse"`
	Principles        []Principle  `json:"principles"`
	DailyScriptures   []Scripture  `json:"daily_scriptures"`
	WeeklyFocusAreas  []string     `json:"weekly_focus_areas"`
	ReflectionPrompts []string     `json:"reflection_prompts"`
	WeeklyPrompt      string       `json:"weekly_prompt"`
	IntentionLabel    string       `json:"intention_label"`
	InvestorTypes     []string     `json:"investor_types"`
	FundingFocus      []string     `json:"funding_focus"`
}

func (c Covenant) PrincipleNames() []string {
	names := make([]string, 0, len(c.Principles))
	for _, p := range c.Principles {
		names = append(names, p.Name)
	}
	return names
}

func LookupCovenant(id string) (Covenant, error) {
	c, ok := covenantFor(CovenantKind(id))
	if !ok {
		return Covenant{}, fmt.Errorf("%w: %q", ErrUnknownCovenant, id)
	}
	return c, nil
}

func AllCovenants() []Covenant {
	out := make([]Covenant, 0, len(covenantKinds))
	for _, k := range covenantKinds {
		c, _ := covenantFor(k)
		out = append(out, c)
	}
	return out
}

// Guidance is the covenant content rotated in for a given day.
type Guidance struct {
	Covenant         CovenantKind `json:"covenant"`
	Scripture        Scripture    `json:"scripture"`
	WeeklyFocus      string       `json:"weekly_focus"`
	ReflectionPrompt string       `json:"reflection_prompt"`
}

// DailyGuidance picks the scripture and reflection prompt by day of month and
// the focus area by Unix week number.
func DailyGuidance(k CovenantKind, now time.Time) (Guidance, error) {
	c, ok := covenantFor(k)
	if !ok {
		return Guidance{}, fmt.Errorf("%w: %q", ErrUnknownCovenant, string(k))
	}
	day := now.Day()
	week := int(now.Unix() / int64(7*24*time.Hour/time.Second))
	return Guidance{
		Covenant:         k,
		Scripture:        c.DailyScriptures[day%len(c.DailyScriptures)],
		WeeklyFocus:      c.WeeklyFocusAreas[week%len(c.WeeklyFocusAreas)],
		ReflectionPrompt: c.ReflectionPrompts[day%len(c.ReflectionPrompts)],
	}, nil
}

func covenantFor(k CovenantKind) (Covenant, bool) {
	switch k {
	case CovenantGospel:
		return gospelCovenant, true
	case CovenantEcological:
		return ecologicalCovenant, true
	case CovenantStoic:
		return stoicCovenant, true
	default:
		return Covenant{}, false
	}
}

var gospelCovenant = Covenant{
	ID:          CovenantGospel,
	Name:        "Gospel Covenant",
	Description: "Build ventures grounded in Biblical principles, spreading the Gospel through business as mission.",
	Icon:        "cross",
	CoreVerse: Quote{
		Reference: "Matthew 6:33",
		Text:      "But seek first the kingdom of God and his righteousness, and all these things will be added to you.",
	},
	Principles: []Principle{
		{Name: "Kingdom First", Description: "Prioritize eternal impact over temporal success", Icon: "target",
			Metrics: []string{"Gospel reach", "Lives transformed", "Kingdom partnerships"}},
		{Name: "Servant Leadership", Description: "Lead by serving others and following Christ's example", Icon: "heart",
			Metrics: []string{"Team discipleship", "Community service", "Leadership development"}},
		{Name: "Eternal Perspective", Description: "Make decisions with eternity in view", Icon: "star",
			Metrics: []string{"Mission alignment", "Eternal investment", "Legacy building"}},
		{Name: "Stewardship", Description: "Faithfully manage resources entrusted by God", Icon: "shield-check",
			Metrics: []string{"Resource efficiency", "Faithful management", "Kingdom ROI"}},
	},
	DailyScriptures: []Scripture{
		{Reference: "Luke 14:28", Text: "For which of you, desiring to build a tower, does not first sit down and count the cost?", Focus: "Wise Planning"},
		{Reference: "Proverbs 16:3", Text: "Commit your work to the Lord, and your plans will be established.", Focus: "Divine Partnership"},
		{Reference: "Colossians 3:23", Text: "Whatever you do, work heartily, as for the Lord and not for men.", Focus: "Excellence"},
		{Reference: "1 Corinthians 10:31", Text: "So, whether you eat or drink, or whatever you do, do all to the glory of God.", Focus: "Purpose"},
		{Reference: "Matthew 25:21", Text: "Well done, good and faithful servant. You have been faithful over a little; I will set you over much.", Focus: "Faithfulness"},
	},
	WeeklyFocusAreas: []string{
		"Stewardship", "Servant Leadership", "Gospel Impact",
		"Kingdom Building", "Eternal Perspective", "Faithful Management",
	},
	ReflectionPrompts: []string{
		"How did I honor God through my business decisions today?",
		"What opportunities did I have to share the Gospel through my work?",
		"How am I stewarding the resources God has entrusted to me?",
		"Where can I serve others more effectively in my leadership?",
		"How does this decision align with eternal values?",
	},
	WeeklyPrompt:   "How did I reflect Christ in my business actions this week?",
	IntentionLabel: "Prayer Intentions",
	InvestorTypes: []string{
		"Faith-based VCs", "Kingdom-minded angels", "Mission-driven funds", "Christian family offices",
	},
	FundingFocus: []string{
		"Business as Mission", "Gospel Impact", "Kingdom Building", "Discipleship Through Work",
	},
}

var ecologicalCovenant = Covenant{
	ID:          CovenantEcological,
	Name:        "Ecological Covenant",
	Description: "Create sustainable ventures that honor creation and promote environmental stewardship.",
	Icon:        "leaf",
	CoreVerse: Quote{
		Reference: "Psalm 24:1",
		Text:      "The earth is the Lord's, and everything in it, the world, and all who live in it.",
	},
	Principles: []Principle{
		{Name: "Creation Care", Description: "Protect and restore God's creation through business", Icon: "leaf",
			Metrics: []string{"Carbon reduction", "Ecosystem restoration", "Biodiversity impact"}},
		{Name: "Sustainability", Description: "Build for long-term ecological health", Icon: "recycle",
			Metrics: []string{"Resource efficiency", "Circular economy", "Renewable adoption"}},
		{Name: "Regenerative Impact", Description: "Leave the environment better than you found it", Icon: "trending-up",
			Metrics: []string{"Net positive impact", "Regenerative practices", "Ecosystem health"}},
		{Name: "Earth Stewardship", Description: "Responsibly manage natural resources", Icon: "shield-check",
			Metrics: []string{"Resource stewardship", "Waste reduction", "Natural capital"}},
	},
	DailyScriptures: []Scripture{
		{Reference: "Genesis 2:15", Text: "The Lord God took the man and put him in the Garden of Eden to work it and take care of it.", Focus: "Stewardship"},
		{Reference: "Romans 8:19-21", Text: "For the creation waits in eager expectation for the children of God to be revealed.", Focus: "Creation Hope"},
		{Reference: "Psalm 104:14", Text: "He makes grass grow for the cattle, and plants for people to cultivate.", Focus: "Divine Provision"},
		{Reference: "Isaiah 55:10-11", Text: "As the rain and the snow come down from heaven, and do not return to it without watering the earth...", Focus: "Natural Cycles"},
		{Reference: "Matthew 6:26", Text: "Look at the birds of the air; they do not sow or reap or store away in barns, and yet your heavenly Father feeds them.", Focus: "Divine Care"},
	},
	WeeklyFocusAreas: []string{
		"Carbon Reduction", "Regenerative Practices", "Circular Economy",
		"Biodiversity", "Resource Efficiency", "Ecosystem Health",
	},
	ReflectionPrompts: []string{
		"How did my business decisions impact God's creation today?",
		"What opportunities do I have to reduce environmental harm?",
		"How can I make my operations more regenerative?",
		"Where can I partner with nature instead of exploiting it?",
		"How does my work contribute to creation's flourishing?",
	},
	WeeklyPrompt:   "How did I honor creation in my business decisions this week?",
	IntentionLabel: "Meditation on Stewardship",
	InvestorTypes: []string{
		"Impact investors", "ESG funds", "Climate VCs", "Sustainable investment funds",
	},
	FundingFocus: []string{
		"Climate Solutions", "Sustainable Technology", "Regenerative Business", "Environmental Impact",
	},
}

var stoicCovenant = Covenant{
	ID:          CovenantStoic,
	Name:        "Stoic Covenant",
	Description: "Develop ventures with philosophical wisdom, virtue, and rational decision-making.",
	Icon:        "lightbulb",
	CoreVerse: Quote{
		Reference: "Marcus Aurelius",
		Text:      "The best revenge is not to be like your enemy.",
	},
	Principles: []Principle{
		{Name: "Virtue Ethics", Description: "Ground all decisions in wisdom, justice, courage, and temperance", Icon: "shield-check",
			Metrics: []string{"Ethical decisions", "Virtue consistency", "Moral leadership"}},
		{Name: "Wisdom", Description: "Seek understanding and make rational choices", Icon: "brain",
			Metrics: []string{"Decision quality", "Learning velocity", "Strategic thinking"}},
		{Name: "Resilience", Description: "Maintain equanimity through challenges and setbacks", Icon: "shield-check",
			Metrics: []string{"Crisis response", "Emotional stability", "Adaptability"}},
		{Name: "Personal Growth", Description: "Continuously develop character and capability", Icon: "trending-up",
			Metrics: []string{"Self-improvement", "Skill development", "Character growth"}},
	},
	DailyScriptures: []Scripture{
		{Reference: "Epictetus", Text: "It's not what happens to you, but how you react to it that matters.", Focus: "Response Control"},
		{Reference: "Marcus Aurelius", Text: "Very little is needed to make a happy life; it is all within yourself, in your way of thinking.", Focus: "Inner Peace"},
		{Reference: "Seneca", Text: "Every new beginning comes from some other beginning's end.", Focus: "Change Acceptance"},
		{Reference: "Marcus Aurelius", Text: "The universe is change; our life is what our thoughts make it.", Focus: "Perspective"},
		{Reference: "Epictetus", Text: "Wealth consists in not having great possessions, but in having few wants.", Focus: "Contentment"},
	},
	WeeklyFocusAreas: []string{
		"Rational Decision Making", "Virtue Development", "Emotional Resilience",
		"Philosophical Wisdom", "Character Building", "Stoic Leadership",
	},
	ReflectionPrompts: []string{
		"Did I respond to challenges with wisdom and virtue today?",
		"What can I control versus what is outside my influence?",
		"How did I practice the four cardinal virtues in my work?",
		"What did I learn from today's difficulties?",
		"How can I better align my actions with philosophical principles?",
	},
	WeeklyPrompt:   "How did I practice virtue and wisdom in my leadership this week?",
	IntentionLabel: "Philosophical Reflection",
	InvestorTypes: []string{
		"Rational investors", "Philosophy-driven funds", "Long-term value investors", "Virtue-based capital",
	},
	FundingFocus: []string{
		"Rational Business Models", "Sustainable Growth", "Virtue-Based Leadership", "Philosophical Innovation",
	},
}
