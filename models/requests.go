package models

// Patch requests are shallow merges: a nil field keeps the stored value.

type ProfilePatch struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Country        *string `json:"country"`
	Region         *string `json:"region"`
	FaithTradition *string `json:"faith_tradition"`
	Bio            *string `json:"bio"`
	Calling        *string `json:"calling"`
	LinkedInURL    *string `json:"linkedin_url"`
	WebsiteURL     *string `json:"website_url"`
}

type StartupPatch struct {
	ProjectName        *string `json:"project_name"`
	MissionStatement   *string `json:"mission_statement"`
	ImpactType         *string `json:"impact_type"`
	RegionOfOperation  *string `json:"region_of_operation"`
	Stage              *string `json:"stage"`
	Readiness          *string `json:"readiness"`
	ProblemDescription *string `json:"problem_description"`
}

type MissionPatch struct {
	WeeklyFocus     *string `json:"weekly_focus"`
	Reflection      *string `json:"reflection"`
	PrayerIntention *string `json:"prayer_intention"`
}

type MarketplacePatch struct {
	IsPublic             *bool   `json:"is_public"`
	AllowInvestorContact *bool   `json:"allow_investor_contact"`
	FundingStage         *string `json:"funding_stage"`
	FundingAmount        *string `json:"funding_amount"`
}

// FieldsPatch covers the top-level record fields.
type FieldsPatch struct {
	Covenant         *string `json:"covenant"`
	DigitalSignature *string `json:"digital_signature"`
	AcceptTerms      *bool   `json:"accept_terms"`
}

type ReflectionRequest struct {
	WeeklyFocus     string `json:"weekly_focus"`
	Reflection      string `json:"reflection"`
	PrayerIntention string `json:"prayer_intention"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (p ProfilePatch) Apply(fp *FounderProfile) {
	set(&fp.Name, p.Name)
	set(&fp.Email, p.Email)
	set(&fp.Country, p.Country)
	set(&fp.Region, p.Region)
	set(&fp.FaithTradition, p.FaithTradition)
	set(&fp.Bio, p.Bio)
	set(&fp.Calling, p.Calling)
	set(&fp.LinkedInURL, p.LinkedInURL)
	set(&fp.WebsiteURL, p.WebsiteURL)
}

func (p StartupPatch) Apply(sd *StartupDetails) {
	set(&sd.ProjectName, p.ProjectName)
	set(&sd.MissionStatement, p.MissionStatement)
	set(&sd.ImpactType, p.ImpactType)
	set(&sd.RegionOfOperation, p.RegionOfOperation)
	set(&sd.Stage, p.Stage)
	set(&sd.Readiness, p.Readiness)
	set(&sd.ProblemDescription, p.ProblemDescription)
}

func (p MissionPatch) Apply(mt *MissionTracker) {
	set(&mt.WeeklyFocus, p.WeeklyFocus)
	set(&mt.Reflection, p.Reflection)
	set(&mt.PrayerIntention, p.PrayerIntention)
}

func (p MarketplacePatch) Apply(ms *MarketplaceSettings) {
	set(&ms.IsPublic, p.IsPublic)
	set(&ms.AllowInvestorContact, p.AllowInvestorContact)
	set(&ms.FundingStage, p.FundingStage)
	set(&ms.FundingAmount, p.FundingAmount)
}
