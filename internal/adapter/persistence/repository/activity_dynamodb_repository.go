package repository

import (
	"context"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultActivitiesTableName      = "activities"
	defaultAnalyticsEventsTableName = "analytics_events"
	defaultAnalyticsTableName       = "analytics"
)

type activityItem struct {
	ID          string            `dynamodbav:"id"`
	Type        string            `dynamodbav:"activity_type"`
	Action      string            `dynamodbav:"action"`
	Description string            `dynamodbav:"description,omitempty"`
	UserID      string            `dynamodbav:"user_id,omitempty"`
	SessionID   string            `dynamodbav:"session_id,omitempty"`
	Metadata    map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
}

type analyticsEventItem struct {
	ID        string            `dynamodbav:"id"`
	EventType string            `dynamodbav:"event_type"`
	Page      string            `dynamodbav:"page,omitempty"`
	UserID    string            `dynamodbav:"user_id,omitempty"`
	SessionID string            `dynamodbav:"session_id,omitempty"`
	Metadata  map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
}

// ActivityDynamoRepository writes audit and analytics rows.
//
// Table requirements:
//   - activities: PK id (string)
//   - analytics_events: PK id (string)
//   - analytics: PK event_type (string), SK day (string, YYYY-MM-DD)
type ActivityDynamoRepository struct {
	ddb             dynamoAPI
	activitiesTable string
	eventsTable     string
	analyticsTable  string
	now             func() time.Time
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return newActivityDynamoRepository(ddb)
}

func newActivityDynamoRepository(ddb dynamoAPI) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:             ddb,
		activitiesTable: getenvDefault("ACTIVITIES_TABLE", defaultActivitiesTableName),
		eventsTable:     getenvDefault("ANALYTICS_EVENTS_TABLE", defaultAnalyticsEventsTableName),
		analyticsTable:  getenvDefault("ANALYTICS_TABLE", defaultAnalyticsTableName),
		now:             time.Now,
	}
}

func (r *ActivityDynamoRepository) CreateActivity(ctx context.Context, a entities.Activity) error {
	av, err := attributevalue.MarshalMap(activityItem{
		ID:          a.ID,
		Type:        string(a.Type),
		Action:      a.Action,
		Description: a.Description,
		UserID:      a.UserID,
		SessionID:   a.SessionID,
		Metadata:    a.Metadata,
		CreatedAt:   formatTime(a.CreatedAt),
	})
	if err != nil {
		return err
	}
	return r.putNew(ctx, r.activitiesTable, av)
}

func (r *ActivityDynamoRepository) CreateAnalyticsEvent(ctx context.Context, e entities.AnalyticsEvent) error {
	av, err := attributevalue.MarshalMap(analyticsEventItem{
		ID:        e.ID,
		EventType: e.EventType,
		Page:      e.Page,
		UserID:    e.UserID,
		SessionID: e.SessionID,
		Metadata:  e.Metadata,
		CreatedAt: formatTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}
	return r.putNew(ctx, r.eventsTable, av)
}

// IncrementDailyCounter bumps the per-day aggregate; ADD creates the row on
// first use.
func (r *ActivityDynamoRepository) IncrementDailyCounter(ctx context.Context, eventType, day string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.analyticsTable),
		Key: map[string]types.AttributeValue{
			"event_type": &types.AttributeValueMemberS{Value: eventType},
			"day":        &types.AttributeValueMemberS{Value: day},
		},
		UpdateExpression:         aws.String("ADD #count :one SET updated_at = :now"),
		ExpressionAttributeNames: map[string]string{"#count": "count"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	})
	return err
}

func (r *ActivityDynamoRepository) putNew(ctx context.Context, table string, av map[string]types.AttributeValue) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
