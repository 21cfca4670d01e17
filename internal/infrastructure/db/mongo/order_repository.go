package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orderdesk/order-management-api/internal/core/domain"
	"github.com/orderdesk/order-management-api/internal/core/ports"
)

const collectionOrders = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(collectionOrders)}
}

type mongoOrder struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName string             `bson:"customer_name"`
	ItemName     string             `bson:"item_name"`
	Quantity     int                `bson:"quantity"`
	Status       string             `bson:"status"`
	OwnerID      string             `bson:"owner_id"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOrder{
		CustomerName: o.CustomerName,
		ItemName:     o.ItemName,
		Quantity:     o.Quantity,
		Status:       string(o.Status),
		OwnerID:      o.OwnerID,
		CreatedAt:    o.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *o
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any order.
		return nil, domain.ErrOrderNotFound
	}

	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return toDomainOrder(mo)
}

func (r *OrderRepository) List(ctx context.Context, q ports.ListOrdersQuery) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q.OwnerID != "" {
		filter["owner_id"] = q.OwnerID
	}
	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"customer_name": pattern},
			bson.M{"item_name": pattern},
		}
	}
	qty := bson.M{}
	if q.MinQty > 0 {
		qty["$gte"] = q.MinQty
	}
	if q.MaxQty > 0 {
		qty["$lte"] = q.MaxQty
	}
	if len(qty) > 0 {
		filter["quantity"] = qty
	}

	dir := 1
	if q.SortDesc {
		dir = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sortField(q.SortKey), Value: dir}}).
		SetSkip(int64(q.Offset)).
		SetLimit(int64(q.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := make([]*domain.Order, 0)
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		o, err := toDomainOrder(mo)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, cur.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": string(status)}}

	var mo mongoOrder
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return toDomainOrder(mo)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing owner scoping and sorting.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "quantity", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// sortField maps the service-level sort key to the stored field name. The id
// key sorts on _id, which is time-ordered for ObjectIDs.
func sortField(key string) string {
	switch key {
	case "quantity":
		return "quantity"
	case "created_at":
		return "created_at"
	default:
		return "_id"
	}
}

func toDomainOrder(mo mongoOrder) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(mo.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", mo.ID.Hex(), err)
	}
	return &domain.Order{
		ID:           mo.ID.Hex(),
		CustomerName: mo.CustomerName,
		ItemName:     mo.ItemName,
		Quantity:     mo.Quantity,
		Status:       status,
		OwnerID:      mo.OwnerID,
		CreatedAt:    mo.CreatedAt.UTC(),
	}, nil
}
