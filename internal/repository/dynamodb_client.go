// Package repository persists the per-user context log in DynamoDB. The log
// is append-only; readers only ever ask for the most recent few turns.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"health-agent/internal/domain"
)

const (
	skPrefixTurn = "TURN#"
	ttlDuration  = 30 * 24 * time.Hour
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// TurnLog defines the context-log operations consumed by the dialogue
// controller.
type TurnLog interface {
	AppendTurn(ctx context.Context, turn domain.Turn) error
	GetRecentTurns(ctx context.Context, userID string, n int) ([]domain.Turn, error)
}

// Client wraps a DynamoDB table holding the turn log.
type Client struct {
	api       dynamodbAPI
	tableName string
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

func userPK(userID string) string {
	return "USER#" + userID
}

func turnSK(ts time.Time) string {
	return skPrefixTurn + ts.UTC().Format(time.RFC3339Nano)
}

func ttlValue(now time.Time) int64 {
	return now.Add(ttlDuration).Unix()
}

// AppendTurn persists one completed turn.
func (c *Client) AppendTurn(ctx context.Context, turn domain.Turn) error {
	if strings.TrimSpace(turn.UserID) == "" {
		return errors.New("repository: AppendTurn: user id is required")
	}
	created := turn.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      turnItem(turn, created),
	})
	if err != nil {
		return fmt.Errorf("repository: AppendTurn: %w", err)
	}
	return nil
}

// GetRecentTurns queries the newest n turns for a user and returns them in
// chronological order.
func (c *Client) GetRecentTurns(ctx context.Context, userID string, n int) ([]domain.Turn, error) {
	if n <= 0 {
		n = domain.ContextWindowSize
	}

	out, err := c.api.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: userPK(userID)},
			":prefix": &types.AttributeValueMemberS{Value: skPrefixTurn},
		},
		// Read newest first so LIMIT keeps the most recent context.
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(n)),
	})
	if err != nil {
		return nil, fmt.Errorf("repository: GetRecentTurns query: %w", err)
	}

	turns := make([]domain.Turn, 0, len(out.Items))
	for _, item := range out.Items {
		turn, err := itemToTurn(item)
		if err != nil {
			return nil, fmt.Errorf("repository: GetRecentTurns unmarshal: %w", err)
		}
		turns = append(turns, turn)
	}
	// Reverse to chronological order before handing to prompt assembly.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func turnItem(turn domain.Turn, created time.Time) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: userPK(turn.UserID)},
		"SK":        &types.AttributeValueMemberS{Value: turnSK(created)},
		"turnId":    &types.AttributeValueMemberS{Value: turn.ID},
		"content":   &types.AttributeValueMemberS{Value: turn.Message.Content},
		"kind":      &types.AttributeValueMemberS{Value: string(turn.Message.Kind)},
		"language":  &types.AttributeValueMemberS{Value: turn.Message.Language},
		"intent":    &types.AttributeValueMemberS{Value: string(turn.Intent)},
		"reply":     &types.AttributeValueMemberS{Value: turn.ReplyText},
		"fromState": &types.AttributeValueMemberS{Value: string(turn.FromState)},
		"toState":   &types.AttributeValueMemberS{Value: string(turn.ToState)},
		"createdAt": &types.AttributeValueMemberS{Value: created.UTC().Format(time.RFC3339Nano)},
		"ttl":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ttlValue(created))},
	}
}

func itemToTurn(item map[string]types.AttributeValue) (domain.Turn, error) {
	pk, err := strAttr(item, "PK")
	if err != nil {
		return domain.Turn{}, err
	}
	content, err := strAttr(item, "content")
	if err != nil {
		return domain.Turn{}, err
	}
	intent, _ := strAttr(item, "intent")
	reply, _ := strAttr(item, "reply")
	kind, _ := strAttr(item, "kind")
	language, _ := strAttr(item, "language")
	turnID, _ := strAttr(item, "turnId")
	fromState, _ := strAttr(item, "fromState")
	toState, _ := strAttr(item, "toState")

	turn := domain.Turn{
		ID:        turnID,
		UserID:    strings.TrimPrefix(pk, "USER#"),
		Intent:    domain.Intent(intent),
		ReplyText: reply,
		FromState: domain.DialogueState(fromState),
		ToState:   domain.DialogueState(toState),
		Message: domain.Message{
			Content:  content,
			Kind:     domain.MessageKind(kind),
			Language: language,
		},
	}
	if createdAt, attrErr := strAttr(item, "createdAt"); attrErr == nil {
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			turn.CreatedAt = ts
			turn.Message.Timestamp = ts
		}
	}
	return turn, nil
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}
