package store

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-memory Collection used by tests. Documents are
// normalized through bson so they decode into the same model structs as the
// mongo-backed implementation. Only the operator subset the services use is
// supported: top-level equality, $in in filters, $set and $inc in updates.
type MemoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{}
}

func (c *MemoryCollection) Find(ctx context.Context, filter bson.M, results interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []bson.M
	for _, doc := range c.docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	return decodeAll(matched, results)
}

func (c *MemoryCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decodeOne(doc, result)
		}
	}
	return ErrNotFound
}

func (c *MemoryCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.insert(doc)
}

func (c *MemoryCollection) InsertMany(ctx context.Context, docs []interface{}) ([]primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		id, err := c.insert(doc)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *MemoryCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &UpdateResult{}
	for _, doc := range c.docs {
		if matches(doc, filter) {
			result.MatchedCount = 1
			if applyUpdate(doc, update) {
				result.ModifiedCount = 1
			}
			break
		}
	}
	return result, nil
}

func (c *MemoryCollection) UpdateMany(ctx context.Context, filter bson.M, update bson.M) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &UpdateResult{}
	for _, doc := range c.docs {
		if matches(doc, filter) {
			result.MatchedCount++
			if applyUpdate(doc, update) {
				result.ModifiedCount++
			}
		}
	}
	return result, nil
}

func (c *MemoryCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if matches(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *MemoryCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var kept []bson.M
	var deleted int64
	for _, doc := range c.docs {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return deleted, nil
}

func (c *MemoryCollection) insert(doc interface{}) (primitive.ObjectID, error) {
	normalized, err := normalize(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := normalized["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		normalized["_id"] = id
	}
	c.docs = append(c.docs, normalized)
	return id, nil
}

// normalize round-trips a document through bson so stored values carry the
// same types mongo would hand back (int32/int64, primitive.DateTime, ...).
func normalize(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeOne(doc bson.M, result interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, result)
}

func decodeAll(docs []bson.M, results interface{}) error {
	v := reflect.ValueOf(results)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return errors.New("results must be a pointer to a slice")
	}

	slice := v.Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, len(docs)))
	for _, doc := range docs {
		elem := reflect.New(slice.Type().Elem())
		if err := decodeOne(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		got, present := doc[key]
		if operator, ok := want.(bson.M); ok {
			in, ok := operator["$in"]
			if !ok {
				return false
			}
			if !present || !inList(got, in) {
				return false
			}
			continue
		}
		if !present || !valueEq(got, want) {
			return false
		}
	}
	return true
}

func inList(got, list interface{}) bool {
	v := reflect.ValueOf(list)
	if v.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if valueEq(got, v.Index(i).Interface()) {
			return true
		}
	}
	return false
}

func valueEq(a, b interface{}) bool {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		return af == bf
	}
	// typed strings (roles, statuses) compare against their bson form
	as, aStr := toString(a)
	bs, bStr := toString(b)
	if aStr && bStr {
		return as == bs
	}
	return reflect.DeepEqual(a, b)
}

func toString(v interface{}) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func applyUpdate(doc bson.M, update bson.M) bool {
	modified := false
	if set, ok := update["$set"].(bson.M); ok {
		for key, value := range set {
			if !valueEq(doc[key], value) {
				modified = true
			}
			doc[key] = value
		}
	}
	if inc, ok := update["$inc"].(bson.M); ok {
		for key, delta := range inc {
			current, _ := toFloat(doc[key])
			amount, ok := toFloat(delta)
			if !ok {
				continue
			}
			doc[key] = int64(current + amount)
			modified = true
		}
	}
	return modified
}
