// Package catalog holds the static reference tables the synthesizers draw
// from. A Catalog is loaded once per run and never mutated.
package catalog

type SkillCategory struct {
	Name   string
	Skills []string
}

type University struct {
	Name     string
	Location string
	Ranking  int
}

type CertificationTemplate struct {
	Name     string
	Provider string
}

type LanguageTemplate struct {
	Name   string
	Levels []string
}

type Catalog struct {
	SkillTaxonomy []SkillCategory
	Universities  []University
	Degrees       []string
	Certificates  []CertificationTemplate
	SoftSkills    []string
	Languages     []LanguageTemplate

	ProjectTypes   []string
	ProjectClients []string
	Roles          []string

	RFPTypes     []string
	RFPClients   []string
	BudgetRanges []string
	RFPSkills    []string

	// FallbackSkills backs project requirements when no profile pool exists.
	FallbackSkills []string

	// CVProjectNames are resume-context project labels, unrelated to the
	// project entities generated elsewhere.
	CVProjectNames []string
}

// Default returns the built-in reference tables.
func Default() *Catalog {
	return &Catalog{
		SkillTaxonomy: []SkillCategory{
			{Name: "Backend", Skills: []string{"Python", "Java", "C++", "Go", "Rust", "Node.js", "Django", "Spring Boot"}},
			{Name: "Frontend", Skills: []string{"JavaScript", "TypeScript", "React", "Vue.js", "Angular", "Next.js"}},
			{Name: "Data/AI", Skills: []string{"Machine Learning", "Data Science", "PostgreSQL", "MongoDB", "Redis", "PyTorch"}},
			{Name: "DevOps", Skills: []string{"AWS", "Docker", "Kubernetes", "Jenkins", "Git", "Terraform", "Azure"}},
		},
		Universities: []University{
			{Name: "Massachusetts Institute of Technology (MIT)", Location: "Cambridge, MA", Ranking: 1},
			{Name: "Stanford University", Location: "Stanford, CA", Ranking: 2},
			{Name: "University of California, Berkeley", Location: "Berkeley, CA", Ranking: 4},
			{Name: "University of Oxford", Location: "Oxford, UK", Ranking: 5},
			{Name: "ETH Zurich", Location: "Zurich, CH", Ranking: 9},
			{Name: "Georgia Institute of Technology", Location: "Atlanta, GA", Ranking: 15},
			{Name: "Warsaw University of Technology", Location: "Warsaw, PL", Ranking: 50},
			{Name: "Technical University of Munich", Location: "Munich, DE", Ranking: 20},
		},
		Degrees: []string{
			"B.Sc. in Computer Science",
			"M.Sc. in Software Engineering",
			"PhD in Artificial Intelligence",
		},
		Certificates: []CertificationTemplate{
			{Name: "AWS Certified Solutions Architect", Provider: "Amazon"},
			{Name: "Google Cloud Professional", Provider: "Google"},
			{Name: "Certified Kubernetes Administrator", Provider: "Linux Foundation"},
			{Name: "Microsoft Azure Developer", Provider: "Microsoft"},
			{Name: "Scrum Master Certification", Provider: "Scrum.org"},
			{Name: "Docker Certified Associate", Provider: "Docker"},
		},
		SoftSkills: []string{
			"Team Leadership", "Agile Methodology", "Scrum", "Mentoring",
			"Public Speaking", "Problem Solving", "Strategic Planning",
			"Cross-functional Communication", "Conflict Resolution", "Adaptability",
		},
		Languages: []LanguageTemplate{
			{Name: "English", Levels: []string{"C1", "C2", "Native"}},
			{Name: "Spanish", Levels: []string{"B1", "B2", "C1"}},
			{Name: "German", Levels: []string{"B1", "B2"}},
			{Name: "French", Levels: []string{"B1", "B2"}},
			{Name: "Polish", Levels: []string{"Native", "C2"}},
		},
		ProjectTypes: []string{
			"E-commerce Platform", "Data Analytics Dashboard", "Mobile App Development",
			"API Gateway Implementation", "Machine Learning Pipeline", "Web Application",
			"Microservices Architecture", "Real-time Chat System", "Content Management System",
			"Payment Processing System", "DevOps Automation", "Cloud Migration",
			"Security Audit System", "Inventory Management", "Customer Portal",
		},
		ProjectClients: []string{
			"TechCorp", "DataSystems Inc", "CloudNative Solutions", "FinTech Innovations",
			"HealthTech Partners", "RetailMax", "LogisticsPro", "EduTech Solutions",
			"MediaStream", "GreenEnergy Co", "SmartCity Initiative", "BioTech Labs",
		},
		Roles: []string{
			"Backend Dev", "Frontend Dev", "Fullstack Dev", "Tech Lead", "Architect", "DevOps Eng",
		},
		RFPTypes: []string{
			"Enterprise Web Application", "Mobile App Development", "Data Analytics Platform",
			"Cloud Migration Project", "E-commerce Modernization", "API Integration Platform",
		},
		RFPClients: []string{
			"Global Finance Corp", "MedTech Industries", "Retail Solutions Ltd", "Manufacturing Plus",
		},
		BudgetRanges: []string{
			"$100K - $250K", "$250K - $500K", "$500K - $1M", "$1M - $2M",
		},
		RFPSkills: []string{
			"Python", "JavaScript", "Java", "React", "Angular", "Node.js", "AWS", "Docker", "Kubernetes",
		},
		FallbackSkills: []string{
			"Python", "Java", "JavaScript", "React", "AWS", "Docker",
		},
		CVProjectNames: []string{
			"E-commerce Platform", "Data Analytics Dashboard", "Mobile App",
			"API Gateway", "Machine Learning Pipeline", "Web Application",
			"Microservices Architecture", "Real-time Chat System",
			"Content Management System", "Payment Processing System",
		},
	}
}
