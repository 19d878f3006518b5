package repository

import (
	"context"
	"errors"
	"time"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultOrdersTableName    = "tracker_orders"
	ordersUsernameIndex       = "username-index"
	ordersPseudonymousIDIndex = "pseudonymous_id-index"
)

// dynamoAPI is the subset of *dynamodb.Client the repository calls.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type addOnItem struct {
	ID   string  `dynamodbav:"id"`
	Cost float64 `dynamodbav:"cost"`
}

type shippingAddressItem struct {
	Email      string `dynamodbav:"email,omitempty"`
	Street     string `dynamodbav:"street"`
	CityRegion string `dynamodbav:"city_region"`
	Country    string `dynamodbav:"country"`
}

type progressItem struct {
	Board     int `dynamodbav:"board"`
	Straps    int `dynamodbav:"straps"`
	Cases     int `dynamodbav:"cases"`
	Batteries int `dynamodbav:"batteries"`
}

type paymentItem struct {
	Method               string  `dynamodbav:"method"`
	TransactionID        string  `dynamodbav:"transaction_id"`
	Status               string  `dynamodbav:"status"`
	Currency             string  `dynamodbav:"currency"`
	Amount               float64 `dynamodbav:"amount"`
	PayPalOrderID        *string `dynamodbav:"paypal_order_id,omitempty"`
	MercadoPagoPaymentID *string `dynamodbav:"mercadopago_payment_id,omitempty"`
	CompletedAt          string  `dynamodbav:"completed_at,omitempty"`
}

type orderItem struct {
	ID               string               `dynamodbav:"id"`
	Username         string               `dynamodbav:"username"`
	PseudonymousID   string               `dynamodbav:"pseudonymous_id,omitempty"`
	Contact          string               `dynamodbav:"contact"`
	TotalUSD         float64              `dynamodbav:"total_usd"`
	PaidUSD          float64              `dynamodbav:"paid_usd"`
	ShippingPaid     bool                 `dynamodbav:"shipping_paid"`
	TrackerCount     int                  `dynamodbav:"tracker_count"`
	Sensor           string               `dynamodbav:"sensor"`
	Magnetometer     bool                 `dynamodbav:"magnetometer"`
	CaseColor        string               `dynamodbav:"case_color"`
	CoverColor       string               `dynamodbav:"cover_color"`
	Extras           map[string]addOnItem `dynamodbav:"extras,omitempty"`
	ShippingCountry  string               `dynamodbav:"shipping_country"`
	ShippingAddress  *shippingAddressItem `dynamodbav:"shipping_address,omitempty"`
	VRHandle         *string              `dynamodbav:"vr_handle,omitempty"`
	Status           string               `dynamodbav:"status"`
	Progress         progressItem         `dynamodbav:"progress"`
	Payment          paymentItem          `dynamodbav:"payment"`
	IsPendingPayment bool                 `dynamodbav:"is_pending_payment"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)
//   - GSI: pseudonymous_id-index (PK: pseudonymous_id)
//
// updated_at is stored as RFC3339Nano and doubles as the version checked by
// Update's condition expression.
type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Order, error) {
	return r.queryOne(ctx, ordersUsernameIndex, "username", username)
}

func (r *OrderDynamoRepository) GetByPseudonymousID(ctx context.Context, pseudonymousID string) (entities.Order, error) {
	return r.queryOne(ctx, ordersPseudonymousIDIndex, "pseudonymous_id", pseudonymousID)
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expectedUpdatedAt time.Time) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #updated_at = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: formatTime(expectedUpdatedAt)},
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.Order{}, interfaces.ErrOrderVersionConflict
	}
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return err != nil && errors.As(err, &ccf)
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:               o.ID,
		Username:         o.Username,
		PseudonymousID:   o.PseudonymousID,
		Contact:          o.Contact,
		TotalUSD:         o.TotalUSD,
		PaidUSD:          o.PaidUSD,
		ShippingPaid:     o.ShippingPaid,
		TrackerCount:     o.TrackerCount,
		Sensor:           o.Sensor,
		Magnetometer:     o.Magnetometer,
		CaseColor:        o.CaseColor,
		CoverColor:       o.CoverColor,
		ShippingCountry:  o.ShippingCountry,
		VRHandle:         o.VRHandle,
		Status:           string(o.Status),
		Progress:         progressItem(o.Progress),
		IsPendingPayment: o.IsPendingPayment,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
		Payment: paymentItem{
			Method:               string(o.Payment.Method),
			TransactionID:        o.Payment.TransactionID,
			Status:               string(o.Payment.Status),
			Currency:             string(o.Payment.Currency),
			Amount:               o.Payment.Amount,
			PayPalOrderID:        o.Payment.PayPalOrderID,
			MercadoPagoPaymentID: o.Payment.MercadoPagoPaymentID,
		},
	}
	if o.Payment.CompletedAt != nil {
		it.Payment.CompletedAt = formatTime(*o.Payment.CompletedAt)
	}
	if len(o.Extras) > 0 {
		it.Extras = make(map[string]addOnItem, len(o.Extras))
		for k, v := range o.Extras {
			it.Extras[k] = addOnItem(v)
		}
	}
	if a := o.ShippingAddress; a != nil {
		it.ShippingAddress = &shippingAddressItem{Email: a.Email, Street: a.Street, CityRegion: a.CityRegion, Country: a.Country}
	}
	return it
}

// fromOrderItem rejects items whose timestamps do not parse; a zero updatedAt
// would break the conditional write.
func fromOrderItem(it orderItem) (entities.Order, error) {
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Order{}, err
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Order{}, err
	}

	o := entities.Order{
		ID:               it.ID,
		Username:         it.Username,
		PseudonymousID:   it.PseudonymousID,
		Contact:          it.Contact,
		TotalUSD:         it.TotalUSD,
		PaidUSD:          it.PaidUSD,
		ShippingPaid:     it.ShippingPaid,
		TrackerCount:     it.TrackerCount,
		Sensor:           it.Sensor,
		Magnetometer:     it.Magnetometer,
		CaseColor:        it.CaseColor,
		CoverColor:       it.CoverColor,
		ShippingCountry:  it.ShippingCountry,
		VRHandle:         it.VRHandle,
		Status:           entities.OrderStatus(it.Status),
		Progress:         entities.Progress(it.Progress),
		IsPendingPayment: it.IsPendingPayment,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		Payment: entities.Payment{
			Method:               entities.PaymentMethod(it.Payment.Method),
			TransactionID:        it.Payment.TransactionID,
			Status:               entities.PaymentStatus(it.Payment.Status),
			Currency:             entities.PaymentCurrency(it.Payment.Currency),
			Amount:               it.Payment.Amount,
			PayPalOrderID:        it.Payment.PayPalOrderID,
			MercadoPagoPaymentID: it.Payment.MercadoPagoPaymentID,
		},
	}
	if it.Payment.CompletedAt != "" {
		completedAt, err := parseTime("payment.completed_at", it.Payment.CompletedAt)
		if err != nil {
			return entities.Order{}, err
		}
		o.Payment.CompletedAt = &completedAt
	}
	if len(it.Extras) > 0 {
		o.Extras = make(map[string]entities.AddOn, len(it.Extras))
		for k, v := range it.Extras {
			o.Extras[k] = entities.AddOn(v)
		}
	}
	if a := it.ShippingAddress; a != nil {
		o.ShippingAddress = &entities.ShippingAddress{Email: a.Email, Street: a.Street, CityRegion: a.CityRegion, Country: a.Country}
	}
	return o, nil
}
