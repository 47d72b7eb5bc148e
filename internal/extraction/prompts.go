package extraction

import "strings"

const resumePromptPreamble = `You are an expert resume parser. Extract the candidate's profile from the resume text below.
COPY skill names as written, lowercase them, and do not invent skills that are not in the text.
Estimate total professional experience in years from the work history dates.
Report the highest education level attained as one of: phd, master, bachelor, associate, diploma, none.
Report the field of study (major) for the highest degree, or an empty string if not stated.`

const jobPromptPreamble = `You are an expert job posting parser. Extract the role's requirements from the posting text below.
COPY required skill names as written and lowercase them. Include both required and strongly preferred skills.
Report required experience in years as a number (0 if not stated).
Report the minimum required education level as one of: phd, master, bachelor, associate, diploma, none.
Report the required field of study (major), or an empty string if any field is acceptable.
List certifications the posting explicitly requires.`

const resumeOutputShape = `{
  "name": "string",
  "skills": ["string"],
  "experience_years": number,
  "certifications": ["string"],
  "highest_education_level": "string",
  "major": "string"
}`

const jobOutputShape = `{
  "title": "string",
  "skills": ["string"],
  "required_experience_years": number,
  "required_certifications": ["string"],
  "required_education_level": "string",
  "required_major": "string"
}`

// buildPrompt assembles the instruction, the expected output shape, and the
// input text into a single extraction prompt.
func buildPrompt(preamble, outputShape, inputText string) string {
	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n\nReturn ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(outputShape)
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

func resumePrompt(text string) string {
	return buildPrompt(resumePromptPreamble, resumeOutputShape, text)
}

func jobPrompt(text string) string {
	return buildPrompt(jobPromptPreamble, jobOutputShape, text)
}
