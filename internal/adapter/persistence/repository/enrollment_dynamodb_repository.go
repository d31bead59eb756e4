package repository

import (
	"context"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEnrollmentsTableName = "enrollments"

type enrollmentItem struct {
	UserID        string `dynamodbav:"user_id"`
	CourseID      string `dynamodbav:"course_id"`
	TransactionID string `dynamodbav:"transaction_id"`
	Status        string `dynamodbav:"status"`
	ActivatedAt   string `dynamodbav:"activated_at"`
}

// EnrollmentDynamoRepository stores course access.
//
// Table requirements:
//   - enrollments: PK user_id (string), SK course_id (string)
type EnrollmentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEnrollmentRepository = (*EnrollmentDynamoRepository)(nil)

func NewEnrollmentDynamoRepository(ddb *dynamodb.Client) *EnrollmentDynamoRepository {
	return &EnrollmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENROLLMENTS_TABLE", defaultEnrollmentsTableName),
	}
}

// Activate is a no-op returning created=false when the user already has the
// course.
func (r *EnrollmentDynamoRepository) Activate(ctx context.Context, e entities.Enrollment) (bool, error) {
	av, err := attributevalue.MarshalMap(enrollmentItem{
		UserID:        e.UserID,
		CourseID:      e.CourseID,
		TransactionID: e.TransactionID,
		Status:        e.Status,
		ActivatedAt:   formatTime(e.ActivatedAt),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(user_id) AND attribute_not_exists(course_id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
