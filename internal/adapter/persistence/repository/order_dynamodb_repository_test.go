package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	putInputs []*dynamodb.PutItemInput
	putErr    error

	item       map[string]types.AttributeValue
	queryInput *dynamodb.QueryInput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.item = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInput = in
	if f.item == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{f.item}}, nil
}

func sampleOrder() entities.Order {
	ref := "mp-1"
	handle := "nyan.vrc"
	created := time.Date(2026, 1, 2, 3, 4, 5, 123456789, time.UTC)
	completed := created.Add(time.Minute)
	return entities.Order{
		ID:              "ord-1",
		Username:        "nyanbun",
		PseudonymousID:  "pseudo-1",
		Contact:         "nyan@example.com",
		TotalUSD:        750,
		PaidUSD:         750,
		ShippingPaid:    true,
		TrackerCount:    8,
		Sensor:          "ICM-45686",
		Magnetometer:    true,
		CaseColor:       "black",
		CoverColor:      "purple",
		Extras:          map[string]entities.AddOn{"charger": {ID: "usb-hub", Cost: 15}},
		ShippingCountry: "CO",
		ShippingAddress: &entities.ShippingAddress{Street: "Calle 1", CityRegion: "Bogota", Country: "CO"},
		VRHandle:        &handle,
		Status:          entities.OrderStatusManufacturing,
		Progress:        entities.Progress{Board: 100, Straps: 40},
		Payment: entities.Payment{
			Method:               entities.PaymentMethodMercadoPago,
			TransactionID:        "tx-1",
			Status:               entities.PaymentStatusCompleted,
			Currency:             entities.PaymentCurrencyLocal,
			Amount:               3000000,
			MercadoPagoPaymentID: &ref,
			CompletedAt:          &completed,
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestOrderDynamoRepository_CreateAndGet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewOrderDynamoRepository(ddb, "")

		o := sampleOrder()
		if _, err := repo.Create(context.Background(), o); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		in := ddb.putInputs[0]
		if *in.TableName != DefaultOrdersTableName || *in.ConditionExpression != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected put input: table=%s cond=%s", *in.TableName, *in.ConditionExpression)
		}
		if _, ok := in.Item["paypal_order_id"]; ok {
			t.Fatalf("absent optional values must not be stored")
		}

		got, err := repo.GetByID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.UpdatedAt != o.UpdatedAt || *got.Payment.CompletedAt != *o.Payment.CompletedAt {
			t.Fatalf("timestamps not preserved: %v %v", got.UpdatedAt, got.Payment.CompletedAt)
		}
		if got.ShippingAddress == nil || got.ShippingAddress.CityRegion != "Bogota" || got.Payment.PayPalOrderID != nil {
			t.Fatalf("optional values not preserved: %+v", got)
		}
		if got.Extras["charger"].ID != "usb-hub" || got.Progress.Straps != 40 {
			t.Fatalf("nested values not preserved: %+v", got)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
		repo := NewOrderDynamoRepository(ddb, "orders")

		_, err := repo.Create(context.Background(), sampleOrder())
		if !errors.Is(err, interfaces.ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("corrupt timestamp is an error", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewOrderDynamoRepository(ddb, "orders")
		if _, err := repo.Create(context.Background(), sampleOrder()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		ddb.item["updated_at"] = &types.AttributeValueMemberS{Value: "yesterday"}

		if _, err := repo.GetByID(context.Background(), "ord-1"); err == nil || !strings.Contains(err.Error(), "updated_at") {
			t.Fatalf("expected updated_at parse error, got %v", err)
		}
		if _, err := repo.GetByPseudonymousID(context.Background(), "pseudo-1"); err == nil {
			t.Fatalf("expected parse error from lookup")
		}
	})

	t.Run("missing item", func(t *testing.T) {
		repo := NewOrderDynamoRepository(&fakeDynamo{}, "orders")
		got, err := repo.GetByID(context.Background(), "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero order, got %+v err=%v", got, err)
		}
	})
}

func TestOrderDynamoRepository_Lookups(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewOrderDynamoRepository(ddb, "orders")
	if _, err := repo.Create(context.Background(), sampleOrder()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := repo.GetByUsername(context.Background(), "nyanbun")
	if err != nil || got.ID != "ord-1" {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
	if *ddb.queryInput.IndexName != "username-index" || ddb.queryInput.ExpressionAttributeNames["#k"] != "username" {
		t.Fatalf("unexpected query: %+v", ddb.queryInput)
	}

	if _, err := repo.GetByPseudonymousID(context.Background(), "pseudo-1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if *ddb.queryInput.IndexName != "pseudonymous_id-index" {
		t.Fatalf("unexpected index: %s", *ddb.queryInput.IndexName)
	}
}

func TestOrderDynamoRepository_Update(t *testing.T) {
	t.Run("conditioned on the expected version", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewOrderDynamoRepository(ddb, "orders")

		o := sampleOrder()
		expected := o.UpdatedAt
		o.UpdatedAt = expected.Add(time.Second)
		if _, err := repo.Update(context.Background(), o, expected); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		in := ddb.putInputs[0]
		v, ok := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS)
		if !ok || v.Value != "2026-01-02T03:04:05.123456789Z" {
			t.Fatalf("unexpected expected version: %+v", in.ExpressionAttributeValues)
		}
	})

	t.Run("stale write", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
		repo := NewOrderDynamoRepository(ddb, "orders")

		_, err := repo.Update(context.Background(), sampleOrder(), time.Now())
		if !errors.Is(err, interfaces.ErrOrderVersionConflict) {
			t.Fatalf("expected ErrOrderVersionConflict, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: errors.New("throttled")}
		repo := NewOrderDynamoRepository(ddb, "orders")

		_, err := repo.Update(context.Background(), sampleOrder(), time.Now())
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}
