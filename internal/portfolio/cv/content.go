package cv

// ContactLink is one entry in the header contact grid. The label is drawn;
// the URL becomes a clickable link region over it.
type ContactLink struct {
	Label string
	URL   string
}

// EducationEntry is one degree line pair in the education section.
type EducationEntry struct {
	Degree string
	School string
}

// Content is the fixed personal data rendered around the experience list.
// Which sections appear is the caller's choice: empty sections are skipped.
type Content struct {
	Name     string
	Title    string
	Contacts []ContactLink

	Summary        string
	Education      []EducationEntry
	Nationality    string
	Languages      []string
	Certifications []string

	// FileName is the suggested download name for the rendered document.
	FileName string
}

// DefaultContent returns the site owner's CV data.
func DefaultContent() Content {
	return Content{
		Name:  "STEFAN RAMAC",
		Title: "DevOps Engineer",
		Contacts: []ContactLink{
			{Label: "Email: stefanramac@gmail.com", URL: "mailto:stefanramac@gmail.com"},
			{Label: "Website: stefanramac.com", URL: "https://stefanramac.com"},
			{Label: "LinkedIn: linkedin.com/in/stefanramac", URL: "https://linkedin.com/in/stefanramac"},
			{Label: "GitHub: github.com/stefanramac", URL: "https://github.com/stefanramac"},
		},
		Summary: "Results-driven IT professional with 4+ years of experience in system integrations, " +
			"backend development, and cloud solutions. Specializing in designing, developing, and " +
			"implementing scalable integration architectures that connect enterprise systems and " +
			"applications. Expertise in Azure middleware, Software AG WebMethods, TIBCO BusinessWorks, " +
			"MuleSoft, Node.js, and Java Spring Boot. Proven track record delivering solutions for " +
			"international clients including Erste Bank, NLB Banks, Schneider Electric, and A1.",
		Education: []EducationEntry{
			{Degree: "Bachelor in Electrical Engineering", School: "Faculty of Technical Sciences, Novi Sad"},
		},
		Nationality: "Croatian (EU), Serbian (Non-EU)",
		Languages:   []string{"Serbian (Native)", "English (C1)", "German (B1)"},
		Certifications: []string{
			"TIBCO BusinessWorks Certified Professional",
			"MuleSoft Certified Developer - Level 1",
			"Professional Scrum Master I",
			"TIBCO BusinessWorks Certified Associate",
			"AZ-900: Microsoft Azure Fundamentals",
			"PSCC-1: Consulting Certificate",
		},
		FileName: "Stefan_Ramac_CV.pdf",
	}
}
