package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"mingle_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI implementation. It knows the engine's
// table key schemas and honors the condition, key-condition and update
// expressions the services actually issue. All operations hold one mutex, so
// conditional writes are atomic the way DynamoDB's are.
type fakeDynamo struct {
	mu      sync.Mutex
	schemas map[string]fakeSchema
	tables  map[string]map[string]map[string]types.AttributeValue
}

type fakeSchema struct {
	pk string
	sk string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		schemas: map[string]fakeSchema{
			models.UserProfilesTable:    {pk: "userId"},
			models.UserPreferencesTable: {pk: "userId"},
			models.InteractionsTable:    {pk: "actorId", sk: "targetId"},
			models.MatchesTable:         {pk: "pairKey"},
			models.UserMatchesTable:     {pk: "userId", sk: "matchId"},
			models.MessagesTable:        {pk: "matchId", sk: "createdAt"},
		},
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func avString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return ""
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	dup := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		dup[k] = v
	}
	return dup
}

func (f *fakeDynamo) keyOf(table string, item map[string]types.AttributeValue) string {
	schema := f.schemas[table]
	key := avString(item[schema.pk])
	if schema.sk != "" {
		key += "\x00" + avString(item[schema.sk])
	}
	return key
}

func (f *fakeDynamo) tableOf(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = make(map[string]map[string]types.AttributeValue)
	}
	return f.tables[name]
}

// conditionHolds evaluates the condition expressions the engine uses:
// "attribute_not_exists(X)" and "attribute_not_exists(X) OR Y <= :v",
// against the existing item (nil when absent), with DynamoDB's semantics.
func conditionHolds(expr string, item map[string]types.AttributeValue, values map[string]types.AttributeValue) bool {
	for _, clause := range strings.Split(expr, " OR ") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.HasPrefix(clause, "attribute_not_exists("):
			attr := strings.TrimSuffix(strings.TrimPrefix(clause, "attribute_not_exists("), ")")
			if item == nil {
				return true
			}
			if _, ok := item[attr]; !ok {
				return true
			}
		case strings.Contains(clause, "<="):
			parts := strings.SplitN(clause, "<=", 2)
			attr := strings.TrimSpace(parts[0])
			placeholder := strings.TrimSpace(parts[1])
			if item == nil {
				continue
			}
			if current, ok := item[attr]; ok && avString(current) <= avString(values[placeholder]) {
				return true
			}
		}
	}
	return false
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.tableOf(*params.TableName)
	key := f.keyOf(*params.TableName, params.Item)

	if params.ConditionExpression != nil {
		existing := table[key]
		if !conditionHolds(*params.ConditionExpression, existing, params.ExpressionAttributeValues) {
			return nil, conditionFailed()
		}
	}

	table[key] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.tableOf(*params.TableName)
	item, ok := table[f.keyOf(*params.TableName, params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

// Query supports equality clauses ("attr = :ph", optionally joined with AND,
// with #name placeholders) over a table or an index, returning items ordered
// by the table's sort key.
func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	type equality struct {
		attr  string
		value string
	}
	var conditions []equality
	for _, clause := range strings.Split(*params.KeyConditionExpression, " AND ") {
		parts := strings.SplitN(clause, "=", 2)
		attr := strings.TrimSpace(parts[0])
		placeholder := strings.TrimSpace(parts[1])
		if resolved, ok := params.ExpressionAttributeNames[attr]; ok {
			attr = resolved
		}
		conditions = append(conditions, equality{attr: attr, value: avString(params.ExpressionAttributeValues[placeholder])})
	}

	table := f.tableOf(*params.TableName)
	schema := f.schemas[*params.TableName]

	var matches []map[string]types.AttributeValue
	for _, item := range table {
		ok := true
		for _, cond := range conditions {
			attr, exists := item[cond.attr]
			if !exists || avString(attr) != cond.value {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, copyItem(item))
		}
	}

	sortAttr := schema.sk
	if sortAttr == "" {
		sortAttr = schema.pk
	}
	sort.Slice(matches, func(i, j int) bool {
		return avString(matches[i][sortAttr]) < avString(matches[j][sortAttr])
	})

	if params.Limit != nil && int32(len(matches)) > *params.Limit {
		matches = matches[:*params.Limit]
	}
	return &dynamodb.QueryOutput{Items: matches}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.tableOf(*params.TableName)
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	items := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, key := range keys {
		items = append(items, copyItem(table[key]))
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.tableOf(*params.TableName)
	key := f.keyOf(*params.TableName, params.Key)
	item := table[key]

	if params.ConditionExpression != nil {
		if !conditionHolds(*params.ConditionExpression, item, params.ExpressionAttributeValues) {
			return nil, conditionFailed()
		}
	}

	if item == nil {
		item = copyItem(params.Key)
	} else {
		item = copyItem(item)
	}

	// "SET a = :x, b = :y" with optional #name placeholders.
	body := strings.TrimPrefix(*params.UpdateExpression, "SET ")
	for _, assignment := range strings.Split(body, ",") {
		parts := strings.SplitN(assignment, "=", 2)
		attr := strings.TrimSpace(parts[0])
		placeholder := strings.TrimSpace(parts[1])
		if resolved, ok := params.ExpressionAttributeNames[attr]; ok {
			attr = resolved
		}
		item[attr] = params.ExpressionAttributeValues[placeholder]
	}

	table[key] = item
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.tableOf(*params.TableName)
	delete(table, f.keyOf(*params.TableName, params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// flakyDynamo wraps a DynamoAPI and fails a fixed number of upcoming calls,
// simulating a store that drops out mid-operation and then recovers.
type flakyDynamo struct {
	DynamoAPI

	mu            sync.Mutex
	failGets      int
	failPuts      int
	failPutsTable string
}

func (f *flakyDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	if f.failGets > 0 {
		f.failGets--
		f.mu.Unlock()
		return nil, errors.New("store unavailable")
	}
	f.mu.Unlock()
	return f.DynamoAPI.GetItem(ctx, params, optFns...)
}

func (f *flakyDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	if f.failPuts > 0 && (f.failPutsTable == "" || f.failPutsTable == aws.ToString(params.TableName)) {
		f.failPuts--
		f.mu.Unlock()
		return nil, errors.New("store unavailable")
	}
	f.mu.Unlock()
	return f.DynamoAPI.PutItem(ctx, params, optFns...)
}
