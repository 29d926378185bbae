// Package profile holds the static copy of the portfolio pages.
package profile

// Social is a sidebar link.
type Social struct {
	Label string
	URL   string
	Icon  string
}

// Card is a titled paragraph on the about page.
type Card struct {
	Title string
	Body  string
}

// GoalGroup is a titled list of goals.
type GoalGroup struct {
	Title  string
	Accent string
	Items  []string
}

// Fact is a labelled fun fact.
type Fact struct {
	Label string
	Text  string
}

// Milestone is one entry of the journey timeline.
type Milestone struct {
	When string
	Text string
}

// Section is a table-of-contents entry pointing at an anchor on the page.
type Section struct {
	Anchor string
	Title  string
}

var (
	Name     = "Le Tien Thuc"
	Tagline  = "No pain,no gain."
	PhotoURL = "/static/photo.jpg"
	Email    = "letienthuc2004@gmail.com"

	Socials = []Social{
		{Label: "GitHub", URL: "https://github.com/Thucdzio", Icon: "github"},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/in/l%C3%AA-ti%E1%BA%BFn-th%E1%BB%B1c-100132192/", Icon: "linkedin"},
		{Label: "Email", URL: "mailto:letienthuc2004@gmail.com", Icon: "mail"},
	}

	HomeIntro = `Below are some of the projects I have participated in or developed`

	Introduction = []string{
		`Hello, I'm Thuc! I'm a passionate Information Technology student at Vietnam National University, Hanoi.
	Currently pursuing my degree while working as a research student at the Laboratory for the Department of
	Software Engineering.`,
		`My journey in technology started with curiosity about how things work behind the scenes. From building my
	first "Hello World" program to deploying complex distributed systems, I've been constantly learning and
	growing in this ever-evolving field.`,
	}

	WhatIDo = []Card{
		{Title: "Full-Stack Development", Body: `Building modern web applications with React, Spring Boot, and various
	databases. I enjoy creating seamless user experiences backed by robust server-side architecture.`},
		{Title: "Linux & Git", Body: `Experienced with Linux basics, Git server setup, GitLab workflows, and
	foundational CI/CD concepts to support modern development practices.`},
		{Title: "Machine Learning & MLOps", Body: `Exploring MLOps practices and deploying ML models in production
	environments. I'm fascinated by the intersection of machine learning and software engineering.`},
		{Title: "Research & Innovation", Body: `Contributing to software engineering research at university laboratory.
	I enjoy exploring new technologies and finding innovative solutions to complex problems.`},
	}

	Goals = []GoalGroup{
		{Title: "Short-term Goals (2025)", Accent: "purple", Items: []string{
			"Complete my Bachelor's degree with honors in Information Technology",
			"Publish research papers in software engineering conferences",
			"Contribute to 5+ open-source projects",
			"Master advanced DevOps practices and cloud architecture",
		}},
		{Title: "Medium-term Goals (2025-2027)", Accent: "blue", Items: []string{
			"Pursue a Master's degree or gain industry experience at a tech company",
			"Build and launch a SaaS product that solves real-world problems",
			"Become proficient in emerging technologies like AI/ML and blockchain",
			"Start mentoring junior developers and sharing knowledge through blogging",
		}},
		{Title: "Long-term Vision (5+ years)", Accent: "green", Items: []string{
			"Lead engineering teams and drive technical innovation",
			"Establish a technology startup focused on solving societal challenges",
			"Contribute to the Vietnamese tech ecosystem through education and mentorship",
			"Build scalable and impactful software solutions used by millions",
		}},
	}

	FunFacts = []Fact{
		{Label: "Favorite Quote", Text: `"If you know, you know." - It's all about the journey of discovery.`},
		{Label: "When I'm not coding", Text: "I enjoy reading tech blogs, playing chess, and exploring new coffee shops in Hanoi."},
		{Label: "Learning Philosophy", Text: "Every bug is a learning opportunity, every project is a chance to grow."},
		{Label: "Dream Project", Text: "Building an AI-powered platform that helps students in Vietnam access quality education."},
	}

	Education = []Milestone{
		{When: "October 2022 – Present", Text: "Student at University of Engineering and Technology, Vietnam National University, Hanoi, majoring in Information Technology."},
		{When: "June 2024", Text: "Student at Laboratory for the Department of Software Engineering."},
	}

	// Activity follows the "published" line on the home page.
	Activity = []string{
		"Updated documentation for ML deployment project",
		"Started research on microservices architecture",
	}

	License = "LICENSED UNDER CC BY-NC-SA 4.0"
	Footer  = []string{"© 2020 - 2025 Le Tien Thuc", "Built with Go", "Theme Stack designed by Jimmy"}
)

// Tables of contents for the right sidebar.
var (
	AboutSections = []Section{
		{Anchor: "introduction", Title: "Introduction"},
		{Anchor: "what-i-do", Title: "What I Do"},
		{Anchor: "tech-stack", Title: "Tech Stack"},
		{Anchor: "goals", Title: "Goals"},
	}
	JourneySections = []Section{
		{Anchor: "education", Title: "Education"},
	}
	ProjectSections = []Section{
		{Anchor: "overview", Title: "Overview"},
		{Anchor: "technologies", Title: "Technologies Used"},
		{Anchor: "features", Title: "Key Features"},
		{Anchor: "results", Title: "Results & Impact"},
	}
)
