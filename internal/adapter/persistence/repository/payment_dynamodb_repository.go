package repository

import (
	"context"
	"fmt"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName          = "payments"
	defaultMpesaTransactionsTableName = "mpesa_transactions"
	defaultCheckoutTableName          = "paypal_transactions"
)

type paymentItem struct {
	TransactionID          string `dynamodbav:"transaction_id"`
	ID                     string `dynamodbav:"id"`
	Method                 string `dynamodbav:"payment_method"`
	Amount                 string `dynamodbav:"amount"`
	Currency               string `dynamodbav:"currency"`
	Status                 string `dynamodbav:"status"`
	CustomerName           string `dynamodbav:"customer_name"`
	CustomerEmail          string `dynamodbav:"customer_email"`
	UserID                 string `dynamodbav:"user_id,omitempty"`
	CourseID               string `dynamodbav:"course_id,omitempty"`
	ServiceID              string `dynamodbav:"service_id,omitempty"`
	Description            string `dynamodbav:"description,omitempty"`
	ReconciliationRequired bool   `dynamodbav:"reconciliation_required"`
	StatusReason           string `dynamodbav:"status_reason,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

type mpesaTransactionItem struct {
	TrackingID        string `dynamodbav:"tracking_id"`
	PhoneNumber       string `dynamodbav:"phone_number"`
	Amount            string `dynamodbav:"amount"`
	Status            string `dynamodbav:"status"`
	CheckoutRequestID string `dynamodbav:"checkout_request_id,omitempty"`
	ResultCode        string `dynamodbav:"result_code,omitempty"`
	ResultDesc        string `dynamodbav:"result_desc,omitempty"`
	ReceiptNumber     string `dynamodbav:"mpesa_receipt_number,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type checkoutTransactionItem struct {
	TrackingID       string `dynamodbav:"tracking_id"`
	Amount           string `dynamodbav:"amount"`
	Currency         string `dynamodbav:"currency"`
	Status           string `dynamodbav:"status"`
	GatewayReference string `dynamodbav:"gateway_reference,omitempty"`
	RedirectURL      string `dynamodbav:"redirect_url,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists payments and their per-method rows.
//
// Table requirements:
//   - payments: PK transaction_id (string)
//   - mpesa_transactions: PK tracking_id (string)
//   - paypal_transactions: PK tracking_id (string)
//
// A payment and its method row are always written in one transaction.
type PaymentDynamoRepository struct {
	ddb           dynamoAPI
	paymentsTable string
	mpesaTable    string
	checkoutTable string
	now           func() time.Time
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return newPaymentDynamoRepository(ddb)
}

func newPaymentDynamoRepository(ddb dynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:           ddb,
		paymentsTable: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		mpesaTable:    getenvDefault("MPESA_TRANSACTIONS_TABLE", defaultMpesaTransactionsTableName),
		checkoutTable: getenvDefault("REDIRECT_TRANSACTIONS_TABLE", defaultCheckoutTableName),
		now:           time.Now,
	}
}

func (r *PaymentDynamoRepository) CreateMobileMoneyPayment(ctx context.Context, p entities.PaymentRecord, tx entities.MobileMoneyTransaction) error {
	side, err := attributevalue.MarshalMap(toMpesaTransactionItem(tx))
	if err != nil {
		return err
	}
	return r.createWith(ctx, p, r.mpesaTable, side)
}

func (r *PaymentDynamoRepository) CreateRedirectPayment(ctx context.Context, p entities.PaymentRecord, rt entities.RedirectTransaction) error {
	side, err := attributevalue.MarshalMap(toCheckoutTransactionItem(rt))
	if err != nil {
		return err
	}
	return r.createWith(ctx, p, r.checkoutTable, side)
}

func (r *PaymentDynamoRepository) CreateManualPayment(ctx context.Context, p entities.PaymentRecord) error {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.paymentsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "transaction_id",
		},
	})
	return err
}

func (r *PaymentDynamoRepository) createWith(ctx context.Context, p entities.PaymentRecord, sideTable string, side map[string]types.AttributeValue) error {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.paymentsTable),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "transaction_id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(sideTable),
				Item:                     side,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "tracking_id"},
			}},
		},
	})
	return err
}

func (r *PaymentDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.paymentsTable),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetMobileMoneyTransaction(ctx context.Context, trackingID string) (entities.MobileMoneyTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.mpesaTable),
		Key: map[string]types.AttributeValue{
			"tracking_id": &types.AttributeValueMemberS{Value: trackingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MobileMoneyTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.MobileMoneyTransaction{}, nil
	}

	var it mpesaTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MobileMoneyTransaction{}, err
	}
	return fromMpesaTransactionItem(it), nil
}

func (r *PaymentDynamoRepository) AttachCheckoutRequestID(ctx context.Context, trackingID, checkoutRequestID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.mpesaTable),
		Key: map[string]types.AttributeValue{
			"tracking_id": &types.AttributeValueMemberS{Value: trackingID},
		},
		UpdateExpression:    aws.String("SET checkout_request_id = :cid, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(tracking_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: checkoutRequestID},
			":now": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	})
	return err
}

func (r *PaymentDynamoRepository) AttachRedirectCheckout(ctx context.Context, trackingID, reference, redirectURL string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.checkoutTable),
		Key: map[string]types.AttributeValue{
			"tracking_id": &types.AttributeValueMemberS{Value: trackingID},
		},
		UpdateExpression:    aws.String("SET gateway_reference = :ref, redirect_url = :url, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(tracking_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
			":url": &types.AttributeValueMemberS{Value: redirectURL},
			":now": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	})
	return err
}

// ApplyStatus moves a pending payment (and its method row) to update.Status.
// The condition on the pending status makes the first terminal writer win;
// later writers get applied=false.
func (r *PaymentDynamoRepository) ApplyStatus(ctx context.Context, trackingID string, method entities.PaymentMethodKind, update entities.StatusUpdate) (bool, error) {
	if !entities.CanTransition(entities.PaymentStatusPending, update.Status) {
		return false, fmt.Errorf("status %q cannot be persisted", update.Status)
	}
	now := formatTime(r.now())
	values := map[string]types.AttributeValue{
		":to":      &types.AttributeValueMemberS{Value: string(update.Status)},
		":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		":reason":  &types.AttributeValueMemberS{Value: update.Reason},
		":now":     &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{"#status": "status"}

	items := []types.TransactWriteItem{{Update: &types.Update{
		TableName: aws.String(r.paymentsTable),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: trackingID},
		},
		UpdateExpression:          aws.String("SET #status = :to, status_reason = :reason, updated_at = :now"),
		ConditionExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}}

	switch method {
	case entities.MethodMobileMoney:
		sideValues := map[string]types.AttributeValue{
			":to":      values[":to"],
			":pending": values[":pending"],
			":now":     values[":now"],
			":code":    &types.AttributeValueMemberS{Value: update.ResultCode},
			":desc":    &types.AttributeValueMemberS{Value: update.Reason},
			":receipt": &types.AttributeValueMemberS{Value: update.ReceiptNumber},
		}
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName: aws.String(r.mpesaTable),
			Key: map[string]types.AttributeValue{
				"tracking_id": &types.AttributeValueMemberS{Value: trackingID},
			},
			UpdateExpression:          aws.String("SET #status = :to, result_code = :code, result_desc = :desc, mpesa_receipt_number = :receipt, updated_at = :now"),
			ConditionExpression:       aws.String("#status = :pending"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: sideValues,
		}})
	case entities.MethodRedirectGateway:
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName: aws.String(r.checkoutTable),
			Key: map[string]types.AttributeValue{
				"tracking_id": &types.AttributeValueMemberS{Value: trackingID},
			},
			UpdateExpression:         aws.String("SET #status = :to, updated_at = :now"),
			ConditionExpression:      aws.String("#status = :pending"),
			ExpressionAttributeNames: names,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":to":      values[":to"],
				":pending": values[":pending"],
				":now":     values[":now"],
			},
		}})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	return paymentItem{
		TransactionID:          p.TransactionID,
		ID:                     p.ID,
		Method:                 string(p.Method),
		Amount:                 p.Amount.StringFixed(2),
		Currency:               p.Currency,
		Status:                 string(p.Status),
		CustomerName:           p.CustomerName,
		CustomerEmail:          p.CustomerEmail,
		UserID:                 p.UserID,
		CourseID:               p.CourseID,
		ServiceID:              p.ServiceID,
		Description:            p.Description,
		ReconciliationRequired: p.ReconciliationRequired,
		StatusReason:           p.StatusReason,
		CreatedAt:              formatTime(p.CreatedAt),
		UpdatedAt:              formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:                     it.ID,
		TransactionID:          it.TransactionID,
		Method:                 entities.PaymentMethodKind(it.Method),
		Amount:                 parseAmount(it.Amount),
		Currency:               it.Currency,
		Status:                 entities.PaymentStatus(it.Status),
		CustomerName:           it.CustomerName,
		CustomerEmail:          it.CustomerEmail,
		UserID:                 it.UserID,
		CourseID:               it.CourseID,
		ServiceID:              it.ServiceID,
		Description:            it.Description,
		ReconciliationRequired: it.ReconciliationRequired,
		StatusReason:           it.StatusReason,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}

func toMpesaTransactionItem(tx entities.MobileMoneyTransaction) mpesaTransactionItem {
	return mpesaTransactionItem{
		TrackingID:        tx.TrackingID,
		PhoneNumber:       tx.PhoneNumber,
		Amount:            tx.Amount.StringFixed(2),
		Status:            string(tx.Status),
		CheckoutRequestID: tx.CheckoutRequestID,
		ResultCode:        tx.ResultCode,
		ResultDesc:        tx.ResultDesc,
		ReceiptNumber:     tx.ReceiptNumber,
		CreatedAt:         formatTime(tx.CreatedAt),
		UpdatedAt:         formatTime(tx.UpdatedAt),
	}
}

func fromMpesaTransactionItem(it mpesaTransactionItem) entities.MobileMoneyTransaction {
	return entities.MobileMoneyTransaction{
		TrackingID:        it.TrackingID,
		PhoneNumber:       it.PhoneNumber,
		Amount:            parseAmount(it.Amount),
		Status:            entities.PaymentStatus(it.Status),
		CheckoutRequestID: it.CheckoutRequestID,
		ResultCode:        it.ResultCode,
		ResultDesc:        it.ResultDesc,
		ReceiptNumber:     it.ReceiptNumber,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func toCheckoutTransactionItem(rt entities.RedirectTransaction) checkoutTransactionItem {
	return checkoutTransactionItem{
		TrackingID:       rt.TrackingID,
		Amount:           rt.Amount.StringFixed(2),
		Currency:         rt.Currency,
		Status:           string(rt.Status),
		GatewayReference: rt.GatewayReference,
		RedirectURL:      rt.RedirectURL,
		CreatedAt:        formatTime(rt.CreatedAt),
		UpdatedAt:        formatTime(rt.UpdatedAt),
	}
}
