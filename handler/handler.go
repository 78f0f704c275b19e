// Package handler is the webhook transport adapter: it parses inbound
// messages from the API Gateway payload, runs one dialogue turn, and renders
// the replies for the wire. Option lists that exceed transport limits degrade
// to a plain numbered-text rendering.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"health-agent/internal/domain"
	"health-agent/internal/usecase"
)

// Interactive list limits of the messaging transport.
const (
	maxOptions     = 10
	maxLabelLength = 24
)

// DialogueUseCase is the orchestration dependency.
type DialogueUseCase interface {
	HandleTurn(ctx context.Context, in usecase.TurnInput) (usecase.TurnOutput, error)
}

// inboundMessage is the webhook body shape.
type inboundMessage struct {
	From      string `json:"from"`
	Body      string `json:"body"`
	Kind      string `json:"kind,omitempty"`
	Language  string `json:"language,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// outboundMessage is one rendered reply.
type outboundMessage struct {
	To      string           `json:"to"`
	Text    string           `json:"text"`
	Options []outboundOption `json:"options,omitempty"`
}

type outboundOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type turnResponse struct {
	Messages []outboundMessage `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the webhook.
type Handler struct {
	dialogue DialogueUseCase
}

// NewHandler creates a Handler.
func NewHandler(dialogue DialogueUseCase) (*Handler, error) {
	if dialogue == nil {
		return nil, errors.New("handler: dialogue use case must not be nil")
	}
	return &Handler{dialogue: dialogue}, nil
}

// Handle processes one webhook delivery.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in inboundMessage
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: "malformed body"}), nil
	}
	if strings.TrimSpace(in.From) == "" {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: "missing sender"}), nil
	}

	msg := domain.Message{
		Content:   in.Body,
		Kind:      messageKind(in.Kind),
		Language:  strings.TrimSpace(in.Language),
		Timestamp: messageTime(in.Timestamp),
	}

	out, err := h.dialogue.HandleTurn(ctx, usecase.TurnInput{UserID: in.From, Message: msg})
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) && ucErr.Code == usecase.ErrorInvalidInput {
			return jsonResponse(http.StatusBadRequest, errorResponse{Error: ucErr.Reason}), nil
		}
		return jsonResponse(http.StatusInternalServerError, errorResponse{Error: "internal error"}), nil
	}

	resp := turnResponse{Messages: make([]outboundMessage, 0, len(out.Replies))}
	for _, reply := range out.Replies {
		resp.Messages = append(resp.Messages, renderReply(in.From, reply))
	}
	return jsonResponse(http.StatusOK, resp), nil
}

// renderReply keeps the structured option list when it fits the transport,
// otherwise folds it into a numbered plain-text message.
func renderReply(to string, reply domain.Reply) outboundMessage {
	if len(reply.Options) == 0 {
		return outboundMessage{To: to, Text: reply.Text}
	}
	if fitsTransport(reply.Options) {
		opts := make([]outboundOption, 0, len(reply.Options))
		for _, o := range reply.Options {
			opts = append(opts, outboundOption{ID: o.ID, Label: o.Label})
		}
		return outboundMessage{To: to, Text: reply.Text, Options: opts}
	}

	var b strings.Builder
	b.WriteString(reply.Text)
	for i, o := range reply.Options {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, o.Label))
	}
	return outboundMessage{To: to, Text: b.String()}
}

func fitsTransport(opts []domain.Option) bool {
	if len(opts) > maxOptions {
		return false
	}
	for _, o := range opts {
		if len([]rune(o.Label)) > maxLabelLength {
			return false
		}
	}
	return true
}

func messageKind(kind string) domain.MessageKind {
	switch domain.MessageKind(strings.ToLower(strings.TrimSpace(kind))) {
	case domain.KindInteractive:
		return domain.KindInteractive
	case domain.KindMedia:
		return domain.KindMedia
	default:
		return domain.KindText
	}
}

func messageTime(unix int64) time.Time {
	if unix <= 0 {
		return time.Now().UTC()
	}
	return time.Unix(unix, 0).UTC()
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"content-type": "application/json"},
			Body:       `{"error":"encoding failure"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       string(raw),
	}
}
