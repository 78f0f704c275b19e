package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"health-agent/internal/domain"
)

type fakeDynamo struct {
	lastPut   *dynamodb.PutItemInput
	lastQuery *dynamodb.QueryInput

	putErr   error
	queryErr error
	queryOut *dynamodb.QueryOutput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.queryOut != nil {
		return f.queryOut, nil
	}
	return &dynamodb.QueryOutput{}, nil
}

func stringAttr(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func turnRow(userID, content, reply string, ts time.Time) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: "USER#" + userID},
		"SK":        &types.AttributeValueMemberS{Value: "TURN#" + ts.UTC().Format(time.RFC3339Nano)},
		"turnId":    &types.AttributeValueMemberS{Value: "t-" + content},
		"content":   &types.AttributeValueMemberS{Value: content},
		"kind":      &types.AttributeValueMemberS{Value: "text"},
		"language":  &types.AttributeValueMemberS{Value: "en"},
		"intent":    &types.AttributeValueMemberS{Value: string(domain.IntentAIChatMessage)},
		"reply":     &types.AttributeValueMemberS{Value: reply},
		"fromState": &types.AttributeValueMemberS{Value: string(domain.StateAIChat)},
		"toState":   &types.AttributeValueMemberS{Value: string(domain.StateAIChat)},
		"createdAt": &types.AttributeValueMemberS{Value: ts.UTC().Format(time.RFC3339Nano)},
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, "turns")
	require.Error(t, err)

	_, err = New(&fakeDynamo{}, "  ")
	require.Error(t, err)
}

func TestAppendTurn(t *testing.T) {
	api := &fakeDynamo{}
	client, err := New(api, "turns")
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	err = client.AppendTurn(context.Background(), domain.Turn{
		ID:        "t1",
		UserID:    "u1",
		Message:   domain.Message{Content: "I have a headache", Kind: domain.KindText, Language: "en"},
		Intent:    domain.IntentAIChatMessage,
		ReplyText: "How long has it lasted?",
		FromState: domain.StateAIChat,
		ToState:   domain.StateAIChat,
		CreatedAt: created,
	})
	require.NoError(t, err)

	require.NotNil(t, api.lastPut)
	require.Equal(t, "turns", *api.lastPut.TableName)
	require.Equal(t, "USER#u1", stringAttr(api.lastPut.Item, "PK"))
	require.Equal(t, "TURN#2026-03-01T10:30:00Z", stringAttr(api.lastPut.Item, "SK"))
	require.Equal(t, "I have a headache", stringAttr(api.lastPut.Item, "content"))
	require.Equal(t, "How long has it lasted?", stringAttr(api.lastPut.Item, "reply"))
	require.Contains(t, api.lastPut.Item, "ttl")
}

func TestAppendTurn_EmptyUserID(t *testing.T) {
	client, err := New(&fakeDynamo{}, "turns")
	require.NoError(t, err)

	err = client.AppendTurn(context.Background(), domain.Turn{UserID: " "})
	require.Error(t, err)
}

func TestAppendTurn_PutError(t *testing.T) {
	api := &fakeDynamo{putErr: errors.New("throttled")}
	client, err := New(api, "turns")
	require.NoError(t, err)

	err = client.AppendTurn(context.Background(), domain.Turn{
		UserID:  "u1",
		Message: domain.Message{Content: "hi"},
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "AppendTurn")
}

func TestGetRecentTurns_ChronologicalOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	api := &fakeDynamo{queryOut: &dynamodb.QueryOutput{
		// Newest first, as DynamoDB returns with ScanIndexForward=false.
		Items: []map[string]types.AttributeValue{
			turnRow("u1", "third", "r3", base.Add(2*time.Minute)),
			turnRow("u1", "second", "r2", base.Add(time.Minute)),
			turnRow("u1", "first", "r1", base),
		},
	}}
	client, err := New(api, "turns")
	require.NoError(t, err)

	turns, err := client.GetRecentTurns(context.Background(), "u1", 3)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	require.Equal(t, "first", turns[0].Message.Content)
	require.Equal(t, "second", turns[1].Message.Content)
	require.Equal(t, "third", turns[2].Message.Content)
	require.Equal(t, "u1", turns[0].UserID)
	require.Equal(t, base, turns[0].CreatedAt)

	require.NotNil(t, api.lastQuery)
	require.False(t, *api.lastQuery.ScanIndexForward)
	require.Equal(t, int32(3), *api.lastQuery.Limit)
	pk := api.lastQuery.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS)
	require.Equal(t, "USER#u1", pk.Value)
}

func TestGetRecentTurns_DefaultLimit(t *testing.T) {
	api := &fakeDynamo{}
	client, err := New(api, "turns")
	require.NoError(t, err)

	_, err = client.GetRecentTurns(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Equal(t, int32(domain.ContextWindowSize), *api.lastQuery.Limit)
}

func TestGetRecentTurns_QueryError(t *testing.T) {
	api := &fakeDynamo{queryErr: errors.New("table missing")}
	client, err := New(api, "turns")
	require.NoError(t, err)

	_, err = client.GetRecentTurns(context.Background(), "u1", 5)
	require.Error(t, err)
	require.ErrorContains(t, err, "GetRecentTurns")
}
