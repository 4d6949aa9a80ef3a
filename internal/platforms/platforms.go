// Package platforms provides the static catalog of platforms a report can
// reference. The catalog is closed and in-process; "other" is the fallback
// for anything outside it.
package platforms

// Platform describes a platform where abuse can occur, with an official
// reporting URL when the platform publishes one.
type Platform struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	ReportingURL *string `json:"reporting_url"`
}

// DefaultID is the fallback platform for unknown or empty submissions.
const DefaultID = "other"

var catalog = []Platform{
	{
		ID:           "facebook",
		Name:         "Facebook",
		Category:     "social_media",
		ReportingURL: ptr("https://www.facebook.com/help/reportlinks"),
	},
	{
		ID:           "instagram",
		Name:         "Instagram",
		Category:     "social_media",
		ReportingURL: ptr("https://help.instagram.com/165828726894770"),
	},
	{
		ID:           "telegram",
		Name:         "Telegram",
		Category:     "messaging",
		ReportingURL: ptr("https://telegram.org/faq#q-there-39s-illegal-content-on-telegram-how-do-i-take-it-down"),
	},
	{
		ID:           "whatsapp",
		Name:         "WhatsApp",
		Category:     "messaging",
		ReportingURL: ptr("https://faq.whatsapp.com/general/security-and-privacy/how-to-report-spam-and-block-contacts"),
	},
	{
		ID:           "twitter",
		Name:         "Twitter/X",
		Category:     "social_media",
		ReportingURL: ptr("https://help.twitter.com/en/safety-and-security/report-abusive-behavior"),
	},
	{
		ID:           "tiktok",
		Name:         "TikTok",
		Category:     "social_media",
		ReportingURL: ptr("https://support.tiktok.com/en/safety-hc/report-a-problem"),
	},
	{
		ID:           "snapchat",
		Name:         "Snapchat",
		Category:     "social_media",
		ReportingURL: ptr("https://support.snapchat.com/en-US/a/report-abuse-in-app"),
	},
	{
		ID:       "email",
		Name:     "Email",
		Category: "communication",
	},
	{
		ID:       DefaultID,
		Name:     "Other",
		Category: "other",
	},
}

// All returns the full platform catalog.
func All() []Platform {
	return catalog
}

// Valid reports whether id names a platform in the catalog.
func Valid(id string) bool {
	for _, p := range catalog {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Normalize returns id when it names a known platform and DefaultID otherwise.
func Normalize(id string) string {
	if Valid(id) {
		return id
	}
	return DefaultID
}

func ptr(s string) *string {
	return &s
}
