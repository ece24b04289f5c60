package content

import "github.com/sakif/portfolio/internal/model"

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

// Technologies is the technology grid in display order.
var Technologies = []model.Technology{
	{Name: "JavaScript", Years: 2, Logo: devicon + "javascript/javascript-original.svg", Color: "#F7DF1E"},
	{Name: "Node.js", Years: 2, Logo: devicon + "nodejs/nodejs-original.svg", Color: "#339933"},
	{Name: "React", Years: 1, Logo: devicon + "react/react-original.svg", Color: "#61DAFB"},
	{Name: "Angular", Years: 0.5, Logo: devicon + "angularjs/angularjs-original.svg", Color: "#DD0031"},
	{Name: "Python", Years: 4, Logo: devicon + "python/python-original.svg", Color: "#3776AB"},
	{Name: "C#", Years: 2, Logo: devicon + "csharp/csharp-original.svg", Color: "#239120"},
	{Name: "C++", Years: 2, Logo: devicon + "cplusplus/cplusplus-original.svg", Color: "#00599C"},
	{Name: "Java", Years: 6, Logo: devicon + "java/java-original.svg", Color: "#ED8B00"},
}
