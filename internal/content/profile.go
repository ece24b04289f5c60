package content

import "github.com/sakif/portfolio/internal/model"

// Profile is the person the page is about.
var Profile = model.Profile{
	Name:     "Brendan Goddard",
	Headline: "FullStack Software Developer",
	Bio: "Passionate full-stack developer with specialization in modern web technologies and a love for creating " +
		"innovative solutions. I specialize in building cool and scalable applications using cutting-edge frameworks " +
		"and have experience across the entire development lifecycle. When I'm not coding, you'll find me " +
		"exploring new technologies, working on new projects, or mentoring the future developers of tomorrow.",
	Location: "London, Ontario",
	Email:    "bjgoddard21@gmail.com",
	Image:    "/assets/IMG_3099.png",
	Resume:   "/assets/BrendanGoddardResume.pdf",
	FooterBlurb: "Full-stack developer passionate about creating innovative solutions " +
		"and building exceptional user experiences.",
	Links: []model.Link{
		{Label: "GitHub", URL: "https://github.com/BrendanGoddard?tab=repositories", Icon: "github"},
		{Label: "LinkedIn", URL: "https://linkedin.com/in/brendan-goddard", Icon: "linkedin"},
	},
}
