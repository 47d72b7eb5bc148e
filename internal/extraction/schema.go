package extraction

// JSON Schemas the LLM output must satisfy before it is trusted. Output that
// fails validation falls through to the keyword scanner.

const resumeProfileSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["skills", "experience_years"],
	"properties": {
		"name": {"type": "string"},
		"skills": {
			"type": "array",
			"items": {"type": "string"}
		},
		"experience_years": {"type": "number", "minimum": 0},
		"certifications": {
			"type": "array",
			"items": {"type": "string"}
		},
		"highest_education_level": {"type": "string"},
		"major": {"type": "string"}
	}
}`

const jobRequirementsSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["skills"],
	"properties": {
		"title": {"type": "string"},
		"skills": {
			"type": "array",
			"items": {"type": "string"}
		},
		"required_experience_years": {"type": "number", "minimum": 0},
		"required_certifications": {
			"type": "array",
			"items": {"type": "string"}
		},
		"required_education_level": {"type": "string"},
		"required_major": {"type": "string"}
	}
}`
