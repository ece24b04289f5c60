package content

import "github.com/sakif/portfolio/internal/model"

// Jobs is the work history, most relevant first.
var Jobs = []model.Job{
	{
		ID:       1,
		Company:  "FRC 3739 - Oakbotics",
		Position: "Programming Mentor",
		Duration: "Apr 2022 - Present",
		Description: "Mentored students in Java programming and advanced FRC robot concepts, including command groups, " +
			"subsystems, and autonomous routines. Guided development of path-following, PID tuning, odometry, and " +
			"neural network–based autonomous navigation to enhance team performance.",
		Logo:         "/assets/oakbotics.jpg",
		Technologies: []string{"Java", "WPILib", "Autonomous function", "Vision Tracking"},
		Link:         "https://www.oakbotics.ca",
	},
	{
		ID:       2,
		Company:  "Armo-Tool",
		Position: "Software Development Intern",
		Duration: "Sept 2024 - Dec 2024",
		Description: "Designed and implemented a 24/7 JavaScript-based auditing system for real-time tracking of record " +
			"changes, improving transparency and accessibility for users. Developed Python scripts using Tesseract OCR " +
			"to automate PDF CAD drawing mirroring, streamlining workflows and reducing manual effort. Delivered " +
			"solutions that integrated seamlessly with existing systems, providing actionable insights and enhancing " +
			"overall efficiency.",
		Logo:         "/assets/Armo.png",
		Technologies: []string{"Python", "Node.js", "MySQL", "Git", "Linux Deployment"},
		Link:         "https://armotool.com/",
	},
	{
		ID:       3,
		Company:  "Bell Canada",
		Position: "Software Development Intern",
		Duration: "Jan 2024 - Apr 2024",
		Description: "Developed a .NET application that interfaces with backend servers and frontend user inputs to price " +
			"business ventures based on multiple factors including years and location. Built features to retrieve " +
			"current data, add new entries, and create custom saving options. Automated business reporting with Python " +
			"scripts that extract Excel data and update server records, while actively participating in team and " +
			"one-on-one meetings to collaborate on project goals.",
		Logo:         "/assets/bell.png",
		Technologies: []string{"Javascript", "Node", "SQL Server", "Python"},
		Link:         "https://www.bell.ca",
	},
}
