package skillgraph

// defaultRelationships is the built-in knowledge base of single-hop skill
// transferability. Entries are one-directional: "react" counting toward a
// "node.js" requirement does not imply the reverse.
var defaultRelationships = map[string][]string{
	"javascript": {"typescript", "react", "vue.js", "angular", "node.js"},
	"typescript": {"javascript", "react", "angular", "node.js"},
	"react":      {"javascript", "typescript", "node.js", "next.js", "react native"},
	"vue.js":     {"javascript", "nuxt.js"},
	"angular":    {"typescript", "javascript"},
	"node.js":    {"javascript", "express", "nest.js"},
	"next.js":    {"react", "typescript"},

	"python":  {"django", "flask", "fastapi", "pandas", "machine learning"},
	"django":  {"python", "rest api"},
	"flask":   {"python", "rest api"},
	"go":      {"microservices", "rest api", "grpc"},
	"java":    {"spring", "kotlin", "microservices"},
	"spring":  {"java", "rest api"},
	"kotlin":  {"java", "android"},
	"c#":      {".net", "azure"},
	".net":    {"c#", "azure"},
	"php":     {"laravel", "mysql"},
	"laravel": {"php", "mysql"},

	"sql":        {"postgresql", "mysql", "database design"},
	"postgresql": {"sql", "database design"},
	"mysql":      {"sql", "database design"},
	"mongodb":    {"nosql", "database design"},
	"redis":      {"caching", "nosql"},

	"docker":     {"kubernetes", "devops", "ci/cd"},
	"kubernetes": {"docker", "devops", "helm"},
	"aws":        {"cloud architecture", "devops", "terraform"},
	"azure":      {"cloud architecture", "devops"},
	"gcp":        {"cloud architecture", "devops"},
	"terraform":  {"aws", "devops", "infrastructure as code"},
	"ci/cd":      {"devops", "jenkins", "github actions"},

	"machine learning": {"python", "data science", "tensorflow"},
	"data science":     {"python", "machine learning", "pandas", "sql"},
	"data analysis":    {"sql", "excel", "pandas", "data science"},

	"project management": {"agile", "scrum", "stakeholder management"},
	"agile":              {"scrum", "kanban", "project management"},
	"scrum":              {"agile", "project management"},
	"ui design":          {"ux design", "figma", "prototyping"},
	"ux design":          {"ui design", "user research", "prototyping"},
	"figma":              {"ui design", "prototyping"},
}
