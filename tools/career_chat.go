package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/responses"
)

// Responder answers a chat message.
type Responder interface {
	Respond(ctx context.Context, message string, prefs models.UserPreferences) responses.Reply
}

// CareerChatTool answers a career question like the chat endpoint does
type CareerChatTool struct {
	responder Responder
}

// NewCareerChatTool creates a new career chat tool
func NewCareerChatTool(responder Responder) *CareerChatTool {
	return &CareerChatTool{responder: responder}
}

func (t *CareerChatTool) Name() string {
	return "career_chat"
}

func (t *CareerChatTool) Description() string {
	return `Ask the career assistant a question.
Returns an HTML formatted answer and where it came from (predefined, linkedin, generated or fallback).`
}

func (t *CareerChatTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"message": map[string]interface{}{
				"type":        "string",
				"description": "The question to ask",
			},
			"preferences": map[string]interface{}{
				"type":        "object",
				"description": "Optional preferences: interests, career_level, goal, location, experience",
			},
		},
		"required": []string{"message"},
	}
}

// CareerChatInput is the input of career_chat
type CareerChatInput struct {
	Message     string                  `json:"message"`
	Preferences *models.UserPreferences `json:"preferences"`
}

// CareerChatOutput is the output of career_chat
type CareerChatOutput struct {
	Response string             `json:"response"`
	Source   models.ReplySource `json:"source"`
}

func (t *CareerChatTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in CareerChatInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(err.Error())
	}
	if strings.TrimSpace(in.Message) == "" {
		return NewErrorResult("message is required")
	}

	prefs := models.DefaultPreferences()
	if in.Preferences != nil {
		prefs = *in.Preferences
	}

	reply := t.responder.Respond(ctx, in.Message, prefs)
	return NewSuccessResult(CareerChatOutput{Response: reply.Text, Source: reply.Source})
}
