// README: OpenAI-compatible chat-completions handler (blocking + SSE streaming).
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hestia/internal/modules/dialog"
)

// Replier is the reply strategy behind the endpoint: the rule-based dialogue
// core or the LLM gateway, selected at startup.
type Replier interface {
	Handle(ctx context.Context, sessionID, utterance string) (dialog.Reply, error)
}

const handleTimeout = 10 * time.Second

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	User        string    `json:"user"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatChoice struct {
	Index        int      `json:"index"`
	Message      *Message `json:"message,omitempty"`
	Delta        *Message `json:"delta,omitempty"`
	FinishReason *string  `json:"finish_reason"`
}

type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type ChatHandler struct {
	replier Replier
	log     *zap.Logger
}

func NewChatHandler(replier Replier, log *zap.Logger) *ChatHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatHandler{replier: replier, log: log}
}

// Completions handles POST /v1/chat/completions.
func (h *ChatHandler) Completions(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.User = strings.TrimSpace(req.User)
	if req.User == "" {
		writeError(c, http.StatusBadRequest, "missing user")
		return
	}
	if len(req.Messages) == 0 {
		writeError(c, http.StatusBadRequest, "messages must not be empty")
		return
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != "user" {
		writeError(c, http.StatusBadRequest, "last message must be from user")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handleTimeout)
	defer cancel()

	reply, err := h.replier.Handle(ctx, req.User, last.Content)
	if err != nil {
		h.log.Error("reply strategy failed", zap.String("user", req.User), zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	id := "chatcmpl-" + uuid.NewString()
	created := time.Now().Unix()
	usage := chatUsage{
		PromptTokens:     reply.Usage.PromptTokens,
		CompletionTokens: reply.Usage.CompletionTokens,
		TotalTokens:      reply.Usage.TotalTokens,
	}

	if req.Stream {
		h.stream(c, id, created, req.Model, reply.Text, usage)
		return
	}

	stop := "stop"
	writeJSON(c, http.StatusOK, ChatResponse{
		ID:      id,
		Object:  "chat.completion",
		Created: created,
		Model:   req.Model,
		Choices: []chatChoice{{
			Index:        0,
			Message:      &Message{Role: "assistant", Content: reply.Text},
			FinishReason: &stop,
		}},
		Usage: &usage,
	})
}

// stream emits the reply as chat.completion.chunk SSE events: one content
// delta, a finishing chunk carrying usage, then the [DONE] sentinel.
func (h *ChatHandler) stream(c *gin.Context, id string, created int64, model, text string, usage chatUsage) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	writeChunk(c, ChatResponse{
		ID:      id,
		Object:  "chat.completion.chunk",
		Created: created,
		Model:   model,
		Choices: []chatChoice{{Index: 0, Delta: &Message{Role: "assistant", Content: text}}},
	})

	stop := "stop"
	writeChunk(c, ChatResponse{
		ID:      id,
		Object:  "chat.completion.chunk",
		Created: created,
		Model:   model,
		Choices: []chatChoice{{Index: 0, Delta: &Message{}, FinishReason: &stop}},
		Usage:   &usage,
	})

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}

func writeChunk(c *gin.Context, chunk ChatResponse) {
	b, err := json.Marshal(chunk)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", b)
	c.Writer.Flush()
}
