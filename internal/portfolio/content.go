package portfolio

// Default returns the built-in profile. Each call returns a fresh copy.
func Default() *Profile {
	return &Profile{
		FullName:    "VIGNESHWAR E",
		DisplayName: "Vigneshwar E",
		Role:        "Java Full Stack Developer | AI & Data Science Graduate",
		Bio: `Highly motivated and results-driven Java Full Stack Developer with a strong foundation in modern web
technologies and a recent graduation focus on AI and Data Science. I specialize in building robust, scalable
enterprise applications using the Spring ecosystem and React/Tailwind CSS.`,

		Email: "vigneshwarbanu@gmail.com",
		Phone: "+91 63741 45497",

		GitHub:     "VigneshwarE143",
		LinkedIn:   "https://www.linkedin.com/in/vigneshware143",
		ResumeLink: "https://drive.google.com/file/d/1gnJeF7mga7jmCGdw5aeFHEk-PYd5WaHK/view?usp=drivesdk",

		About: []string{
			`I approach development with a strong focus on clean code and robust architecture. My background in AI
and Data Science lets me build not only functional applications but also data-informed features and
scalable backend systems.`,
			`I excel in the **Java Spring Boot ecosystem**, designing and implementing RESTful APIs for
microservices. On the frontend, I use **React and Tailwind CSS** to create modern, responsive and
accessible user interfaces.`,
			`I'm eager to contribute to projects that push the boundaries of technology and integrate
data-driven insights into core product functionality.`,
		},

		Sections: []string{
			SectionHome, SectionAbout, SectionSkills, SectionProjects, SectionEducation, SectionContact,
		},

		Skills: []SkillGroup{
			{Category: "Backend & Core", List: []string{"Java 17+", "Spring Boot", "REST APIs", "Microservices", "Hibernate/JPA"}},
			{Category: "Frontend", List: []string{"React.js", "JavaScript/TypeScript", "HTML5/CSS3", "Tailwind CSS"}},
			{Category: "Databases & Tools", List: []string{"PostgreSQL", "MySQL", "MongoDB", "Git/GitHub", "Docker"}},
			{Category: "Data & AI", List: []string{"Python", "Machine Learning", "Data Analysis", "Pandas/NumPy"}},
		},

		Projects: []Project{
			{
				Title: "Enterprise E-Commerce Catalog Service",
				Description: `Developed a scalable, full-featured e-commerce catalog backend. Features include product
management, secure authentication (JWT), and advanced searching.`,
				Tech: []string{"Java", "Spring Boot", "PostgreSQL", "Microservices"},
				Link: "https://github.com/VigneshwarE143/ECOMMERCE-CATALOGUE",
			},
			{
				Title: "Real-Time Job Board Backend",
				Description: `Designed and implemented a job board platform backend, facilitating real-time job
postings and applicant tracking using modern Spring architecture.`,
				Tech: []string{"Java", "Spring", "Hibernate", "RESTful API"},
				Link: "https://github.com/VigneshwarE143/JOB_BOARD-BACKEND_PROJECT",
			},
		},

		Education: []Education{
			{Type: "B.Tech Computer Science", Institution: "Agni College of Technology, Chennai", Details: "CGPA: 8.3/10", Year: "2020-2024"},
			{Type: "HSC (Higher Secondary)", Institution: "S M Hindu Hr Sec School, Sirkali", Details: "Percentage: 72.83%", Year: "2019-2020"},
			{Type: "SSLC (10th Grade)", Institution: "S M Hindu Hr Sec School, Sirkali", Details: "Percentage: 78.2%", Year: "2017-2018"},
		},
	}
}
