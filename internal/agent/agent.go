// Package agent orchestrates one tool-calling model turn per chat request:
// it grounds the conversation in the user's profile, exposes the job search
// as a callable tool, and reconciles whatever the turn produced into a single
// tagged response.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/job-chat-agent/internal/db"
	"github.com/jonathan/job-chat-agent/internal/llm"
	"github.com/jonathan/job-chat-agent/internal/prompts"
)

// JobSearcher executes a filtered job search on behalf of the model
type JobSearcher interface {
	SearchJobs(ctx context.Context, f db.JobFilter) db.JobSearchResult
}

// ResponseType tags the variant of a chat response
type ResponseType string

// Response variants: exactly one is produced per request
const (
	// TypeStructured carries job search results from a tool invocation
	TypeStructured ResponseType = "structured"
	// TypeChat carries a plain conversational reply
	TypeChat ResponseType = "chat"
	// TypeError carries a human-readable failure description
	TypeError ResponseType = "error"
)

// Response is the single outcome of a chat turn. Data is set only for the
// structured variant; Message accompanies every variant.
type Response struct {
	Type    ResponseType        `json:"response_type"`
	Data    *db.JobSearchResult `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
}

// fallbackMessage accompanies structured results when the model produced no
// text of its own during the turn.
const fallbackMessage = "Here are the jobs I found for you."

// Agent wraps the model client with the fixed system instructions. The
// instructions are loaded once at construction; conversation state is built
// fresh per request and never shared.
type Agent struct {
	client      llm.Client
	system      string
	profileTmpl string
}

// New creates an Agent. Panics if the embedded prompt file is missing,
// which is a build defect, not a runtime condition.
func New(client llm.Client) *Agent {
	return &Agent{
		client:      client,
		system:      prompts.MustGet("chat.json", "system"),
		profileTmpl: prompts.MustGet("chat.json", "user-details"),
	}
}

// Chat runs one model turn for the user's message and returns exactly one
// response. Model failures of any kind are converted to an error-typed
// response; they never propagate.
func (a *Agent) Chat(ctx context.Context, message string, profile db.UserProfile, searcher JobSearcher) Response {
	req := llm.ChatRequest{
		System:  a.system + "\n\n" + a.groundingContext(profile),
		Message: message,
		Tools:   []llm.Tool{searchJobsTool(searcher)},
	}

	turn, err := a.client.Chat(ctx, req)
	if err != nil {
		log.Printf("[agent] model turn failed: %v", err)
		return Response{Type: TypeError, Message: fmt.Sprintf("Internal error: %v", err)}
	}

	return reconcile(turn)
}

// groundingContext renders the per-conversation instruction block from the
// profile. Skills join into a human-readable comma-separated list.
func (a *Agent) groundingContext(p db.UserProfile) string {
	return prompts.Format(a.profileTmpl, map[string]string{
		"FirstName":    p.FirstName,
		"LastName":     p.LastName,
		"Availability": p.Availability,
		"Bio":          p.Bio,
		"Role":         p.Role,
		"City":         p.City,
		"Country":      p.Country,
		"Skills":       strings.Join(p.Skills, ", "),
	})
}

// reconcile folds over the ordered turn record, keeping the most recent tool
// result and the most recent text. If any tool invocation happened, the last
// result is authoritative and becomes the structured payload, with the last
// text (or the fixed fallback) as its message. With no tool invocation the
// last text stands alone as a conversational reply.
func reconcile(turn *llm.Turn) Response {
	var lastData *db.JobSearchResult
	var lastText string

	for _, ev := range turn.Events {
		if ev.Text != "" {
			lastText = ev.Text
		}
		if ev.Call != nil {
			if result, ok := ev.Call.Response.(db.JobSearchResult); ok {
				r := result
				lastData = &r
			}
		}
	}

	if lastData != nil {
		message := lastText
		if message == "" {
			message = fallbackMessage
		}
		return Response{Type: TypeStructured, Data: lastData, Message: message}
	}

	return Response{Type: TypeChat, Message: lastText}
}
