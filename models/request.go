package models

// StatusSuccess and StatusError are the values of the "status" field every
// JSON response carries.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ChatRequest represents the API request for a chat message
// @Description Chat message with optional preferences
type ChatRequest struct {
	Message     string           `json:"message" example:"How can I advance from senior developer to tech lead?"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

// ReplySource tells the client where a chat reply came from.
type ReplySource string

const (
	SourcePredefined ReplySource = "predefined"
	SourceLinkedIn   ReplySource = "linkedin"
	SourceGenerated  ReplySource = "generated"
	SourceFallback   ReplySource = "fallback"
)

// ChatResponse represents the API response for a chat message
// @Description Assistant reply, HTML formatted
type ChatResponse struct {
	Status   string      `json:"status" example:"success"`
	Response string      `json:"response"`
	Source   ReplySource `json:"source" example:"predefined"`
}

// RecommendationsResponse wraps a recommendation set
// @Description Recommendations for the given filters
type RecommendationsResponse struct {
	Status          string            `json:"status" example:"success"`
	Recommendations RecommendationSet `json:"recommendations"`
}

// ConnectLinkedInRequest represents a request to connect a LinkedIn profile
// @Description LinkedIn profile URL to connect
type ConnectLinkedInRequest struct {
	LinkedInURL string `json:"linkedin_url" example:"https://www.linkedin.com/in/chase-thompson012/"`
}

// ConnectLinkedInResponse represents a connected profile
// @Description Connected profile with derived preferences and suggestions
type ConnectLinkedInResponse struct {
	Status             string             `json:"status" example:"success"`
	ProfileData        *ProfileRecord     `json:"profile_data"`
	UpdatedPreferences UserPreferences    `json:"updated_preferences"`
	Suggestions        ProfileSuggestions `json:"suggestions"`
	SessionToken       string             `json:"session_token,omitempty"`
}

// LinkedInSessionResponse is the profile restored from a session token
// @Description Profile restored from a LinkedIn session token
type LinkedInSessionResponse struct {
	Status      string          `json:"status" example:"success"`
	ProfileData *ProfileRecord  `json:"profile_data"`
	Preferences UserPreferences `json:"preferences"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Error   string `json:"error" example:"No file uploaded"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Generator string `json:"generator" example:"gemini-api"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
