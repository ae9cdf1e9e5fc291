// Package cv produces the analysis shown after a CV upload.
package cv

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/utils"
)

// skillVocabulary is scanned case-insensitively against the extracted text.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Rust", "C++", "C#",
	"React", "Angular", "Vue", "Node.js", "Django", "Spring",
	"SQL", "PostgreSQL", "MongoDB", "Docker", "Kubernetes", "Terraform",
	"AWS", "Azure", "GCP", "Machine Learning", "Data Analysis",
	"Leadership", "Project Management", "Agile", "Scrum",
	"Communication", "Mentoring", "Strategic Planning", "Product Management",
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

var skillPatterns = compileSkills(skillVocabulary)

func compileSkills(names []string) []skillPattern {
	patterns := make([]skillPattern, 0, len(names))
	for _, name := range names {
		// word boundaries that also hold for names ending in symbols such as C++
		expr := `(?i)(?:^|[^\w+#.])` + regexp.QuoteMeta(name) + `(?:$|[^\w+#])`
		patterns = append(patterns, skillPattern{name: name, re: regexp.MustCompile(expr)})
	}
	return patterns
}

// Analyzer reads uploaded CVs.
type Analyzer struct {
	extractor *utils.DocumentExtractor
	logger    *zap.Logger
}

// NewAnalyzer creates a CV analyzer.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{
		extractor: utils.NewDocumentExtractor(),
		logger:    logger.With(zap.String("component", "cv")),
	}
}

// Analyze returns the standard CV analysis. Text that can be extracted adds
// detected skills and a word count. Unsupported formats and extraction
// failures leave those empty.
func (a *Analyzer) Analyze(filename string, content []byte) models.CVAnalysis {
	analysis := StandardAnalysis()
	if !a.Supported(filename) {
		a.logger.Debug("skipping text extraction for unsupported format",
			zap.String("filename", filename),
			zap.Strings("supported", utils.SupportedFormats()),
		)
		return analysis
	}

	text, err := a.extractor.ExtractText(filename, content)
	if err != nil {
		a.logger.Warn("could not extract CV text",
			zap.String("filename", filename),
			zap.Int("bytes", len(content)),
			zap.Error(err),
		)
		return analysis
	}

	analysis.DetectedSkills = DetectSkills(text)
	analysis.WordCount = len(strings.Fields(text))
	a.logger.Debug("CV analysed",
		zap.String("filename", filename),
		zap.Int("words", analysis.WordCount),
		zap.Strings("skills", analysis.DetectedSkills),
	)
	return analysis
}

// Supported reports whether the extractor understands filename's format.
func (a *Analyzer) Supported(filename string) bool {
	return a.extractor.IsSupportedFormat(filename)
}

// UploadMessage is the confirmation text for an uploaded file.
func UploadMessage(filename string) string {
	return fmt.Sprintf("CV uploaded successfully: %s", filename)
}

// StandardAnalysis is the analysis every upload receives.
func StandardAnalysis() models.CVAnalysis {
	return models.CVAnalysis{
		SkillsIdentified:   []string{"JavaScript", "Python", "React", "Node.js", "Leadership"},
		ExperienceLevel:    "Senior",
		RecommendedRoles:   []string{"Tech Lead", "Senior Developer", "Engineering Manager"},
		SkillGaps:          []string{"Strategic Planning", "Executive Communication"},
		RecommendedCourses: []string{"Leadership in Tech", "Strategic Management"},
		DetectedSkills:     []string{},
	}
}

// DetectSkills lists vocabulary skills mentioned in text, in vocabulary order.
func DetectSkills(text string) []string {
	found := []string{}
	for _, p := range skillPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.name)
		}
	}
	return found
}
