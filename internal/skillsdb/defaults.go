package skillsdb

// defaultCategories is the built-in skill database, used when no external
// database file is configured.
var defaultCategories = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "c++", "c#", "c", "php", "ruby", "go",
		"rust", "kotlin", "swift", "typescript", "scala", "r", "matlab",
		"perl", "shell", "bash", "html", "css", "sql",
	},
	"web_technologies": {
		"react", "angular", "vue", "node.js", "express", "django", "flask",
		"spring", "bootstrap", "jquery", "sass", "webpack", "redux",
		"next.js", "rest api", "graphql", "websocket", "json", "xml",
		"tailwind css",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "sqlite", "redis", "cassandra",
		"oracle", "dynamodb", "elasticsearch", "neo4j", "firebase",
		"mariadb", "couchbase",
	},
	"data_frameworks": {
		"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "opencv",
		"keras", "apache spark", "hadoop", "kafka", "airflow", "databricks",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
		"vercel", "netlify", "cloudflare", "docker", "kubernetes", "jenkins",
		"gitlab", "github actions", "terraform", "ansible",
	},
	"devops_tools": {
		"git", "jira", "confluence", "postman", "figma", "tableau",
		"power bi", "travis ci", "circleci", "sonarqube", "grafana",
		"prometheus",
	},
	"operating_systems": {
		"linux", "windows", "macos", "unix", "ubuntu", "centos", "redhat",
	},
	"soft_skills": {
		"leadership", "teamwork", "communication", "problem solving",
		"analytical thinking", "project management", "agile", "scrum",
		"collaboration", "mentoring", "adaptability", "critical thinking",
		"time management",
	},
	"data_science_ml": {
		"machine learning", "deep learning", "data analysis",
		"data visualization", "statistical modeling",
		"natural language processing", "computer vision",
		"predictive modeling", "feature engineering", "big data",
		"data warehousing", "etl",
	},
	"testing_qa": {
		"unit testing", "integration testing", "end-to-end testing",
		"qa automation", "selenium", "load testing", "performance testing",
	},
	"security": {
		"cybersecurity", "network security", "data encryption",
		"vulnerability assessment", "penetration testing", "firewalls",
		"identity and access management",
	},
}
