// Package resources provides the static directory of Ethiopian support
// organizations for people experiencing technology-facilitated abuse.
// Entries are maintained per language; unknown languages fall back to
// English.
package resources

import "github.com/safenet-ai/safenet/internal/classify"

// Hotline describes a support organization reachable by phone.
type Hotline struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Services     []string `json:"services"`
	Availability string   `json:"availability"`
}

// LegalResource describes a government or legal support contact.
type LegalResource struct {
	Title    string   `json:"title"`
	Contact  string   `json:"contact"`
	Address  string   `json:"address"`
	Services []string `json:"services"`
}

// OnlineResource describes a web-based reference.
type OnlineResource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Directory groups all support resources for one language.
type Directory struct {
	Hotlines        []Hotline        `json:"hotlines"`
	LegalResources  []LegalResource  `json:"legal_resources"`
	OnlineResources []OnlineResource `json:"online_resources"`
}

// For returns the resource directory for a language, falling back to
// English for unsupported values.
func For(language string) Directory {
	if classify.NormalizeLanguage(language) == classify.LanguageAmharic {
		return amharic
	}
	return english
}

var english = Directory{
	Hotlines: []Hotline{
		{
			Name:         "Association for Women's Sanctuary and Development (AWSAD)",
			Phone:        "+251-111-562992",
			Services:     []string{"Legal aid", "Counseling", "Safe shelter"},
			Availability: "24/7",
		},
		{
			Name:         "Yenege Tesfa",
			Phone:        "+251-930-001122",
			Services:     []string{"Psychosocial support", "Legal assistance"},
			Availability: "Mon-Fri 8AM-5PM",
		},
		{
			Name:         "Ethiopian Women Lawyers Association (EWLA)",
			Phone:        "+251-111-563355",
			Services:     []string{"Legal representation", "Advocacy"},
			Availability: "Mon-Fri 8:30AM-5:30PM",
		},
	},
	LegalResources: []LegalResource{
		{
			Title:    "Federal Police Cyber Crime Unit",
			Contact:  "+251-111-572355",
			Address:  "Addis Ababa, Ethiopia",
			Services: []string{"Cybercrime reporting", "Investigation"},
		},
		{
			Title:    "Ministry of Women and Social Affairs",
			Contact:  "+251-111-515179",
			Address:  "Addis Ababa, Ethiopia",
			Services: []string{"GBV support", "Policy advocacy"},
		},
	},
	OnlineResources: []OnlineResource{
		{
			Title:       "National Cyber Security Strategy",
			URL:         "https://www.insa.gov.et",
			Description: "Ethiopia's cybersecurity framework",
		},
	},
}

var amharic = Directory{
	Hotlines: []Hotline{
		{
			Name:         "የሴቶች መሸሸጊያና ልማት ድርጅት (AWSAD)",
			Phone:        "+251-111-562992",
			Services:     []string{"የህግ እርዳታ", "አማካሪነት", "ደህንነቱ የተጠበቀ መጠለያ"},
			Availability: "24/7",
		},
		{
			Name:         "የነገ ተስፋ",
			Phone:        "+251-930-001122",
			Services:     []string{"ስነ-ልቦናዊ ድጋፍ", "የህግ እርዳታ"},
			Availability: "ሰኞ-አርብ 8ሰዓት-5ሰዓት",
		},
		{
			Name:         "የኢትዮጵያ የሴቶች ጠበቆች ማህበር (EWLA)",
			Phone:        "+251-111-563355",
			Services:     []string{"የህግ ውክልና", "ጥብቅና"},
			Availability: "ሰኞ-አርብ 8:30ሰዓት-5:30ሰዓት",
		},
	},
	LegalResources: []LegalResource{
		{
			Title:    "የፌዴራል ፖሊስ የሳይበር ወንጀል ምርመራ ክፍል",
			Contact:  "+251-111-572355",
			Address:  "አዲስ አበባ፣ ኢትዮጵያ",
			Services: []string{"የሳይበር ወንጀል ሪፖርት", "ምርመራ"},
		},
		{
			Title:    "የሴቶችና ማህበራዊ ጉዳይ ሚኒስቴር",
			Contact:  "+251-111-515179",
			Address:  "አዲስ አበባ፣ ኢትዮጵያ",
			Services: []string{"በጾታ ላይ የተመሰረተ ጥቃት ድጋፍ", "ፖሊሲ ጥብቅና"},
		},
	},
	OnlineResources: []OnlineResource{
		{
			Title:       "ብሄራዊ የሳይበር ደህንነት ስትራቴጂ",
			URL:         "https://www.insa.gov.et",
			Description: "የኢትዮጵያ የሳይበር ደህንነት ማዕቀፍ",
		},
	},
}
