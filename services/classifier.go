package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"civiclens/config"
	"civiclens/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var geminiClient *genai.Client

const classifierModel = "gemini-1.5-flash"

// ErrClassifierFailure covers every way the external analysis can fail:
// network error, empty response, malformed JSON. Callers surface it for a
// user-facing retry; no report is ever created from a failed analysis.
var ErrClassifierFailure = errors.New("classifier failure")

// InitClassifierService creates the shared Gemini client.
func InitClassifierService(cfg *config.Config) error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}
	geminiClient = client
	return nil
}

// rawAnalysis mirrors the JSON contract the model is prompted to return.
type rawAnalysis struct {
	IssueType           string `json:"issue_type"`
	Confidence          string `json:"confidence"`
	Severity            string `json:"severity"`
	Description         string `json:"description"`
	SuggestedDepartment string `json:"suggested_department"`
	ComplaintText       string `json:"complaint_text"`
	PriorityLevel       string `json:"priority_level"`
}

// AnalyzeCivicIssue sends the photographed scene to Gemini and maps the
// classification into a CivicIssueData draft. imageBase64 is the raw base64
// payload without a data-URL prefix.
func AnalyzeCivicIssue(ctx context.Context, imageBase64, location string) (models.CivicIssueData, error) {
	if geminiClient == nil {
		return models.CivicIssueData{}, fmt.Errorf("%w: gemini client not initialized", ErrClassifierFailure)
	}

	image, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return models.CivicIssueData{}, fmt.Errorf("%w: invalid image encoding: %v", ErrClassifierFailure, err)
	}

	model := geminiClient.GenerativeModel(classifierModel)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.ImageData("jpeg", image), genai.Text(buildAnalysisPrompt(location)))
	if err != nil {
		return models.CivicIssueData{}, fmt.Errorf("%w: %v", ErrClassifierFailure, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.CivicIssueData{}, fmt.Errorf("%w: empty response", ErrClassifierFailure)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return parseAnalysis(text.String())
}

func buildAnalysisPrompt(location string) string {
	locationContext := location
	if locationContext == "" {
		locationContext = "an Indian city"
	}

	return fmt.Sprintf(`You are an AI civic assistant for Indian cities.

Context: The user is reporting a problem in: %s.

Analyze the uploaded image and detect if it contains a civic issue.

Possible issues:
* pothole
* garbage dump
* broken streetlight
* water leakage
* road damage
* illegal dumping
* fallen tree
* damaged signboard

If the image does not contain a discernible civic issue (e.g., a selfie, a photo of a pet, or blurry non-civic scene), set "issue_type" to "Invalid".

Return ONLY valid JSON:

{
"issue_type": "",
"confidence": "",
"severity": "low/medium/high",
"description": "",
"suggested_department": "",
"complaint_text": "",
"priority_level": "normal/urgent"
}

Write complaint_text as a formal complaint addressed to a municipal corporation in India.`, locationContext)
}

// parseAnalysis maps the raw model output to the domain record.
func parseAnalysis(text string) (models.CivicIssueData, error) {
	cleaned := cleanModelOutput(text)
	if cleaned == "" {
		return models.CivicIssueData{}, fmt.Errorf("%w: empty response", ErrClassifierFailure)
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return models.CivicIssueData{}, fmt.Errorf("%w: malformed response: %v", ErrClassifierFailure, err)
	}
	if raw.IssueType == "" {
		return models.CivicIssueData{}, fmt.Errorf("%w: response missing issue type", ErrClassifierFailure)
	}

	urgent := raw.PriorityLevel == "urgent" ||
		strings.EqualFold(raw.Severity, "high") ||
		strings.EqualFold(raw.Severity, "critical")
	days := 7
	if urgent {
		days = 2
	}

	return models.CivicIssueData{
		IssueType:               raw.IssueType,
		Severity:                normalizeSeverity(raw.Severity),
		Department:              raw.SuggestedDepartment,
		Description:             raw.Description,
		ComplaintTitle:          "Civic Complaint: " + raw.IssueType,
		ComplaintBody:           raw.ComplaintText,
		EstimatedResolutionDays: days,
	}, nil
}

// normalizeSeverity maps the model's lowercase severities onto the domain
// enum, falling back to Medium for anything unexpected.
func normalizeSeverity(s string) models.Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return models.SeverityLow
	case "medium":
		return models.SeverityMedium
	case "high":
		return models.SeverityHigh
	case "critical":
		return models.SeverityCritical
	default:
		return models.SeverityMedium
	}
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
