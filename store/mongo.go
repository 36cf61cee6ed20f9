package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/threadlab/threadlab-backend-go/models"
)

// NewMongoStores builds the MongoDB-backed store bundle.
func NewMongoStores(db *mongo.Database) *Stores {
	counters := &mongoCounters{db: db}
	return &Stores{
		Products:       &MongoProductStore{db: db, counters: counters},
		Reviews:        &MongoReviewStore{db: db, counters: counters},
		Carts:          &MongoCartStore{db: db},
		Orders:         &MongoOrderStore{db: db, counters: counters},
		Designs:        &MongoDesignStore{db: db},
		Votes:          &MongoVoteLedger{db: db},
		RecentlyViewed: &MongoRecentlyViewedStore{db: db},
	}
}

func mapMongoErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// mongoCounters hands out monotonically increasing integer IDs per entity,
// one counter document per name.
type mongoCounters struct {
	db *mongo.Database
}

func (c *mongoCounters) next(ctx context.Context, name string) (int, error) {
	var doc struct {
		Seq int `bson:"seq"`
	}
	err := c.db.Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

type MongoProductStore struct {
	db       *mongo.Database
	counters *mongoCounters
}

func (s *MongoProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.db.Collection("products").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProductStore) GetByID(ctx context.Context, id int) (models.Product, error) {
	var product models.Product
	err := s.db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	return product, mapMongoErr(err)
}

func (s *MongoProductStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	id, err := s.counters.next(ctx, "products")
	if err != nil {
		return models.Product{}, err
	}
	p.ID = id
	if _, err := s.db.Collection("products").InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *MongoProductStore) Update(ctx context.Context, p models.Product) error {
	result, err := s.db.Collection("products").ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoReviewStore struct {
	db       *mongo.Database
	counters *mongoCounters
}

func (s *MongoReviewStore) GetByProductID(ctx context.Context, productID int) ([]models.Review, error) {
	cursor, err := s.db.Collection("reviews").Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *MongoReviewStore) GetByID(ctx context.Context, id int) (models.Review, error) {
	var review models.Review
	err := s.db.Collection("reviews").FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	return review, mapMongoErr(err)
}

func (s *MongoReviewStore) Create(ctx context.Context, r models.Review) (models.Review, error) {
	id, err := s.counters.next(ctx, "reviews")
	if err != nil {
		return models.Review{}, err
	}
	r.ID = id
	if _, err := s.db.Collection("reviews").InsertOne(ctx, r); err != nil {
		return models.Review{}, err
	}
	return r, nil
}

func (s *MongoReviewStore) Update(ctx context.Context, r models.Review) error {
	result, err := s.db.Collection("reviews").ReplaceOne(ctx, bson.M{"_id": r.ID}, r)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoReviewStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.Collection("reviews").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoCartStore struct {
	db *mongo.Database
}

func (s *MongoCartStore) Get(ctx context.Context, sessionID string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.Collection("carts").FindOne(ctx, bson.M{"_id": sessionID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{SessionID: sessionID}, nil
	}
	return cart, err
}

func (s *MongoCartStore) Save(ctx context.Context, cart models.Cart) error {
	_, err := s.db.Collection("carts").ReplaceOne(
		ctx,
		bson.M{"_id": cart.SessionID},
		cart,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoCartStore) Clear(ctx context.Context, sessionID string) error {
	_, err := s.db.Collection("carts").DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}

type MongoOrderStore struct {
	db       *mongo.Database
	counters *mongoCounters
}

func (s *MongoOrderStore) Create(ctx context.Context, o models.Order) (models.Order, error) {
	id, err := s.counters.next(ctx, "orders")
	if err != nil {
		return models.Order{}, err
	}
	o.ID = id
	if _, err := s.db.Collection("orders").InsertOne(ctx, o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *MongoOrderStore) GetByID(ctx context.Context, id int) (models.Order, error) {
	var order models.Order
	err := s.db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	return order, mapMongoErr(err)
}

func (s *MongoOrderStore) GetBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	cursor, err := s.db.Collection("orders").Find(
		ctx,
		bson.M{"sessionId": sessionID},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrderStore) Update(ctx context.Context, o models.Order) error {
	result, err := s.db.Collection("orders").ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoDesignStore struct {
	db *mongo.Database
}

func (s *MongoDesignStore) GetBySession(ctx context.Context, sessionID string) ([]models.SavedDesign, error) {
	cursor, err := s.db.Collection("designs").Find(
		ctx,
		bson.M{"sessionId": sessionID},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var designs []models.SavedDesign
	if err := cursor.All(ctx, &designs); err != nil {
		return nil, err
	}
	return designs, nil
}

func (s *MongoDesignStore) GetByID(ctx context.Context, id string) (models.SavedDesign, error) {
	var design models.SavedDesign
	err := s.db.Collection("designs").FindOne(ctx, bson.M{"_id": id}).Decode(&design)
	return design, mapMongoErr(err)
}

func (s *MongoDesignStore) Save(ctx context.Context, d models.SavedDesign) error {
	_, err := s.db.Collection("designs").ReplaceOne(
		ctx,
		bson.M{"_id": d.ID},
		d,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoDesignStore) Delete(ctx context.Context, sessionID, id string) error {
	result, err := s.db.Collection("designs").DeleteOne(ctx, bson.M{"_id": id, "sessionId": sessionID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoDesignStore) CreateShare(ctx context.Context, share models.DesignShare) error {
	_, err := s.db.Collection("designShares").InsertOne(ctx, share)
	return err
}

func (s *MongoDesignStore) GetShare(ctx context.Context, token string) (models.DesignShare, error) {
	var share models.DesignShare
	err := s.db.Collection("designShares").FindOne(ctx, bson.M{"_id": token}).Decode(&share)
	if err != nil {
		return models.DesignShare{}, mapMongoErr(err)
	}
	if share.Expired(time.Now()) {
		return models.DesignShare{}, ErrNotFound
	}
	return share, nil
}

type MongoVoteLedger struct {
	db *mongo.Database
}

type voteDoc struct {
	SessionID string           `bson:"sessionId"`
	ReviewID  int              `bson:"reviewId"`
	Vote      models.VoteValue `bson:"vote"`
}

func (s *MongoVoteLedger) Get(ctx context.Context, sessionID string, reviewID int) (models.VoteValue, error) {
	var doc voteDoc
	err := s.db.Collection("userVotes").FindOne(
		ctx,
		bson.M{"sessionId": sessionID, "reviewId": reviewID},
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.Vote, nil
}

func (s *MongoVoteLedger) Set(ctx context.Context, sessionID string, reviewID int, vote models.VoteValue) error {
	_, err := s.db.Collection("userVotes").UpdateOne(
		ctx,
		bson.M{"sessionId": sessionID, "reviewId": reviewID},
		bson.M{"$set": bson.M{"vote": vote}},
		options.Update().SetUpsert(true),
	)
	return err
}

type MongoRecentlyViewedStore struct {
	db *mongo.Database
}

func (s *MongoRecentlyViewedStore) Get(ctx context.Context, sessionID string) ([]models.ProductSummary, error) {
	var doc struct {
		Items []models.ProductSummary `bson:"items"`
	}
	err := s.db.Collection("recentlyViewed").FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

func (s *MongoRecentlyViewedStore) Add(ctx context.Context, sessionID string, p models.ProductSummary) error {
	collection := s.db.Collection("recentlyViewed")

	// Drop any existing entry for the product, then push to the front with
	// the list capped. Two steps, same as the teacher's address updates.
	_, err := collection.UpdateOne(
		ctx,
		bson.M{"_id": sessionID},
		bson.M{"$pull": bson.M{"items": bson.M{"id": p.ID}}},
	)
	if err != nil {
		return err
	}

	_, err = collection.UpdateOne(
		ctx,
		bson.M{"_id": sessionID},
		bson.M{"$push": bson.M{
			"items": bson.M{
				"$each":     []models.ProductSummary{p},
				"$position": 0,
				"$slice":    recentlyViewedCap,
			},
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
