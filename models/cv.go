package models

// CVAnalysis is the result of analysing an uploaded CV.
// @Description CV analysis result
type CVAnalysis struct {
	SkillsIdentified   []string `json:"skills_identified"`
	ExperienceLevel    string   `json:"experience_level" example:"Senior"`
	RecommendedRoles   []string `json:"recommended_roles"`
	SkillGaps          []string `json:"skill_gaps"`
	RecommendedCourses []string `json:"recommended_courses"`
	DetectedSkills     []string `json:"detected_skills"`
	WordCount          int      `json:"word_count" example:"412"`
}

// UploadCVResponse represents the API response for a CV upload
// @Description CV upload acknowledgement with analysis
type UploadCVResponse struct {
	Status    string     `json:"status" example:"success"`
	Message   string     `json:"message" example:"CV uploaded successfully: resume.pdf"`
	Analysis  CVAnalysis `json:"analysis"`
	StoredURL string     `json:"stored_url,omitempty"`
}
