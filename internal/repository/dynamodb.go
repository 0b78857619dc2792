package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
)

// DynamoAPI is the subset of the DynamoDB client the store uses
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, opts ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, opts ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

const (
	attrPK     = "PK"
	attrKind   = "Kind"
	kindMarker = "MARKER"
)

// item is the stored shape of every entity. All kinds share one table keyed by PK.
type item[T any] struct {
	PK   string `dynamodbav:"PK"`
	Kind string `dynamodbav:"Kind"`
	ID   int64  `dynamodbav:"ID"`
	Data T      `dynamodbav:"Data"`
}

// marker reserves a unique user attribute
type marker struct {
	PK     string `dynamodbav:"PK"`
	Kind   string `dynamodbav:"Kind"`
	UserID int64  `dynamodbav:"UserID"`
}

func emailMarker(email string) string {
	return "EMAIL#" + strings.ToLower(strings.TrimSpace(email))
}

func usernameMarker(username string) string {
	return "USERNAME#" + username
}

func counterKey(kind models.Kind) string {
	return "COUNTER#" + string(kind)
}

func pkAttr(pk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{attrPK: &types.AttributeValueMemberS{Value: pk}}
}

// DynamoStore keeps every collection in a single DynamoDB table
type DynamoStore struct {
	client    DynamoAPI
	tableName string
	now       func() time.Time
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore initializes a store over the named table
func NewDynamoStore(client DynamoAPI, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName, now: time.Now}
}

// EnsureTable creates the table when it does not exist and waits until it is active
func (s *DynamoStore) EnsureTable(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table %s: %w", s.tableName, err)
	}
	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrPK), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrPK), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.tableName, err)
	}
	waiter := dynamodb.NewTableExistsWaiter(s.client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)}, 2*time.Minute); err != nil {
		return fmt.Errorf("failed waiting for table %s: %w", s.tableName, err)
	}
	return nil
}

func (s *DynamoStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)})
	return err
}

func (s *DynamoStore) Close() error { return nil }

// nextID atomically increments the per-kind counter item
func (s *DynamoStore) nextID(ctx context.Context, kind models.Kind) (int64, error) {
	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.tableName),
		Key:              pkAttr(counterKey(kind)),
		UpdateExpression: aws.String("ADD Seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", kind, err)
	}
	var id int64
	if err := attributevalue.Unmarshal(out.Attributes["Seq"], &id); err != nil {
		return 0, fmt.Errorf("failed to decode %s id: %w", kind, err)
	}
	return id, nil
}

func marshalItem[T any](kind models.Kind, id int64, data T) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(item[T]{
		PK:   models.Key(kind, id).String(),
		Kind: string(kind),
		ID:   id,
		Data: data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	return av, nil
}

// putNew writes a fresh entity
func putNew[T any](ctx context.Context, s *DynamoStore, kind models.Kind, id int64, data T) error {
	av, err := marshalItem(kind, id, data)
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return fmt.Errorf("failed to put %s %d: %w", kind, id, err)
	}
	return nil
}

// replace overwrites an entity that must already exist
func replace[T any](ctx context.Context, s *DynamoStore, kind models.Kind, id int64, data T) error {
	av, err := marshalItem(kind, id, data)
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	return notFoundOnCondition(err, kind, id)
}

func notFoundOnCondition(err error, kind models.Kind, id int64) error {
	if err == nil {
		return nil
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("%s %d: %w", strings.ToLower(string(kind)), id, apperr.ErrNotFound)
	}
	return fmt.Errorf("failed to write %s %d: %w", kind, id, err)
}

// getItem loads one entity by key
func getItem[T any](ctx context.Context, s *DynamoStore, kind models.Kind, id int64) (T, error) {
	var zero T
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            pkAttr(models.Key(kind, id).String()),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, fmt.Errorf("failed to get %s %d: %w", kind, id, err)
	}
	if out.Item == nil {
		return zero, fmt.Errorf("%s %d: %w", strings.ToLower(string(kind)), id, apperr.ErrNotFound)
	}
	var it item[T]
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, fmt.Errorf("failed to unmarshal %s %d: %w", kind, id, err)
	}
	return it.Data, nil
}

// scanKind reads every entity of kind that passes the optional extra filter, in id order
func scanKind[T any](ctx context.Context, s *DynamoStore, kind models.Kind, extra ...expression.ConditionBuilder) ([]T, error) {
	filter := expression.Name(attrKind).Equal(expression.Value(string(kind)))
	if len(extra) > 0 {
		filter = filter.And(extra[0], extra[1:]...)
	}
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s filter: %w", kind, err)
	}

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName:                 aws.String(s.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConsistentRead:            aws.Bool(true),
	})
	var items []item[T]
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		var batch []item[T]
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s page: %w", kind, err)
		}
		items = append(items, batch...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, it.Data)
	}
	return out, nil
}

func markerPut(tableName, pk string, userID int64) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(marker{PK: pk, Kind: kindMarker, UserID: userID})
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal marker: %w", err)
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	}}, nil
}

func markerDelete(tableName, pk string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(tableName),
		Key:       pkAttr(pk),
	}}
}

// cancelledAt reports whether a cancelled transaction failed the condition of item i
func cancelledAt(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || i >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[i].Code) == "ConditionalCheckFailed"
}

// conflictFromCancel maps a cancelled user transaction to the failed uniqueness check.
// checks holds the message for each transact item that guards a marker, by index.
func conflictFromCancel(err error, checks map[int]string) error {
	for i, msg := range checks {
		if cancelledAt(err, i) {
			return apperr.Conflict(msg)
		}
	}
	return nil
}

// CreateUser writes the user together with email and username markers in one transaction
func (s *DynamoStore) CreateUser(ctx context.Context, user *models.User) error {
	id, err := s.nextID(ctx, models.KindUser)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	u := *user
	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.DefaultRole
	}
	if u.Preferences == nil {
		u.Preferences = map[string]any{}
	}

	av, err := marshalItem(models.KindUser, id, u)
	if err != nil {
		return err
	}
	emailPut, err := markerPut(s.tableName, emailMarker(u.Email), id)
	if err != nil {
		return err
	}
	usernamePut, err := markerPut(s.tableName, usernameMarker(u.Username), id)
	if err != nil {
		return err
	}
	_, err = s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(s.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(PK)"),
			}},
			emailPut,
			usernamePut,
		},
	})
	if err != nil {
		if conflict := conflictFromCancel(err, map[int]string{1: "Email already exists", 2: "Username already exists"}); conflict != nil {
			return fmt.Errorf("failed to create user: %w", conflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	*user = u
	return nil
}

// GetUser retrieves a user by id
func (s *DynamoStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := getItem[models.User](ctx, s, models.KindUser, id)
	if err != nil {
		return nil, err
	}
	if u.Preferences == nil {
		u.Preferences = map[string]any{}
	}
	return &u, nil
}

func (s *DynamoStore) userByMarker(ctx context.Context, pk string) (*models.User, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            pkAttr(pk),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get marker: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
	}
	var m marker
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal marker: %w", err)
	}
	return s.GetUser(ctx, m.UserID)
}

// FindUserByEmail retrieves a user by email, case-insensitively
func (s *DynamoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userByMarker(ctx, emailMarker(email))
}

// FindUserByUsername retrieves a user by username
func (s *DynamoStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userByMarker(ctx, usernameMarker(username))
}

// UpdateUser applies a profile patch, moving the markers when email or username change
func (s *DynamoStore) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	current, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	u := *current
	patch.Apply(&u)
	u.UpdatedAt = s.now().UTC()

	av, err := marshalItem(models.KindUser, id, u)
	if err != nil {
		return nil, err
	}
	writes := []types.TransactWriteItem{{Put: &types.Put{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	}}}
	checks := map[int]string{}
	if emailMarker(u.Email) != emailMarker(current.Email) {
		put, err := markerPut(s.tableName, emailMarker(u.Email), id)
		if err != nil {
			return nil, err
		}
		checks[len(writes)] = "Email already exists"
		writes = append(writes, put, markerDelete(s.tableName, emailMarker(current.Email)))
	}
	if u.Username != current.Username {
		put, err := markerPut(s.tableName, usernameMarker(u.Username), id)
		if err != nil {
			return nil, err
		}
		checks[len(writes)] = "Username already exists"
		writes = append(writes, put, markerDelete(s.tableName, usernameMarker(current.Username)))
	}

	if _, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		if conflict := conflictFromCancel(err, checks); conflict != nil {
			return nil, fmt.Errorf("failed to update user: %w", conflict)
		}
		if cancelledAt(err, 0) {
			return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &u, nil
}

// MergePreferences writes prefs over the stored preferences
func (s *DynamoStore) MergePreferences(ctx context.Context, id int64, prefs map[string]any) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Preferences = models.MergePreferences(u.Preferences, prefs)
	u.UpdatedAt = s.now().UTC()
	if err := replace(ctx, s, models.KindUser, id, *u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPasswordHash replaces the stored password hash
func (s *DynamoStore) SetPasswordHash(ctx context.Context, id int64, hash string) error {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.UpdatedAt = s.now().UTC()
	return replace(ctx, s, models.KindUser, id, *u)
}

// CreateWasteRecord stores a new waste record
func (s *DynamoStore) CreateWasteRecord(ctx context.Context, record *models.WasteRecord) error {
	id, err := s.nextID(ctx, models.KindWaste)
	if err != nil {
		return err
	}
	r := *record
	r.ID = id
	if err := putNew(ctx, s, models.KindWaste, id, r); err != nil {
		return err
	}
	*record = r
	return nil
}

// ListWasteRecords returns records matching the filter in id order.
// The user filter runs in DynamoDB, the date bounds are applied after decoding.
func (s *DynamoStore) ListWasteRecords(ctx context.Context, filter WasteRecordFilter) ([]models.WasteRecord, error) {
	if filter.Empty() {
		return []models.WasteRecord{}, nil
	}
	var extra []expression.ConditionBuilder
	if filter.UserID != 0 {
		extra = append(extra, expression.Name("Data.UserID").Equal(expression.Value(filter.UserID)))
	}
	all, err := scanKind[models.WasteRecord](ctx, s, models.KindWaste, extra...)
	if err != nil {
		return nil, err
	}
	out := make([]models.WasteRecord, 0, len(all))
	for _, r := range all {
		if filter.Match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// CreateCollection stores a new collection
func (s *DynamoStore) CreateCollection(ctx context.Context, c *models.Collection) error {
	id, err := s.nextID(ctx, models.KindCollection)
	if err != nil {
		return err
	}
	col := *c
	col.ID = id
	if err := putNew(ctx, s, models.KindCollection, id, col); err != nil {
		return err
	}
	*c = col
	return nil
}

// GetCollection retrieves a collection by id
func (s *DynamoStore) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	c, err := getItem[models.Collection](ctx, s, models.KindCollection, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCollections returns every collection in id order
func (s *DynamoStore) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return scanKind[models.Collection](ctx, s, models.KindCollection)
}

// ListUpcomingCollections returns collections scheduled after the given time, soonest first
func (s *DynamoStore) ListUpcomingCollections(ctx context.Context, after time.Time, limit int) ([]models.Collection, error) {
	all, err := scanKind[models.Collection](ctx, s, models.KindCollection)
	if err != nil {
		return nil, err
	}
	upcoming := make([]models.Collection, 0, len(all))
	for _, c := range all {
		if c.ScheduledDate.After(after) {
			upcoming = append(upcoming, c)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledDate.Before(upcoming[j].ScheduledDate)
	})
	return limitSlice(upcoming, limit), nil
}

// CreateReminder stores a new reminder
func (s *DynamoStore) CreateReminder(ctx context.Context, r *models.Reminder) error {
	id, err := s.nextID(ctx, models.KindReminder)
	if err != nil {
		return err
	}
	rem := *r
	rem.ID = id
	if err := putNew(ctx, s, models.KindReminder, id, rem); err != nil {
		return err
	}
	*r = rem
	return nil
}

// GetReminder retrieves a reminder by id
func (s *DynamoStore) GetReminder(ctx context.Context, id int64) (*models.Reminder, error) {
	r, err := getItem[models.Reminder](ctx, s, models.KindReminder, id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRemindersByUser returns a user's reminders in id order
func (s *DynamoStore) ListRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	return scanKind[models.Reminder](ctx, s, models.KindReminder,
		expression.Name("Data.UserID").Equal(expression.Value(userID)))
}

// ListDueReminders returns active reminders due at or before the given time
func (s *DynamoStore) ListDueReminders(ctx context.Context, at time.Time) ([]models.Reminder, error) {
	active, err := scanKind[models.Reminder](ctx, s, models.KindReminder,
		expression.Name("Data.IsActive").Equal(expression.Value(true)))
	if err != nil {
		return nil, err
	}
	due := make([]models.Reminder, 0, len(active))
	for _, r := range active {
		if !r.ReminderTime.After(at) {
			due = append(due, r)
		}
	}
	return due, nil
}

// UpdateReminder applies a reminder patch
func (s *DynamoStore) UpdateReminder(ctx context.Context, id int64, patch models.ReminderPatch) (*models.Reminder, error) {
	r, err := s.GetReminder(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsActive != nil {
		r.IsActive = *patch.IsActive
	}
	if err := replace(ctx, s, models.KindReminder, id, *r); err != nil {
		return nil, err
	}
	return r, nil
}

// CreateLocation stores a new disposal location
func (s *DynamoStore) CreateLocation(ctx context.Context, l *models.DisposalLocation) error {
	id, err := s.nextID(ctx, models.KindLocation)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	loc := cloneLocation(*l)
	loc.ID = id
	loc.CreatedAt = now
	loc.UpdatedAt = now
	if err := putNew(ctx, s, models.KindLocation, id, loc); err != nil {
		return err
	}
	*l = loc
	return nil
}

// GetLocation retrieves a disposal location by id
func (s *DynamoStore) GetLocation(ctx context.Context, id int64) (*models.DisposalLocation, error) {
	l, err := getItem[models.DisposalLocation](ctx, s, models.KindLocation, id)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListLocations returns locations in id order, optionally only those accepting wasteType
func (s *DynamoStore) ListLocations(ctx context.Context, wasteType string) ([]models.DisposalLocation, error) {
	all, err := scanKind[models.DisposalLocation](ctx, s, models.KindLocation)
	if err != nil {
		return nil, err
	}
	if wasteType == "" {
		return all, nil
	}
	out := make([]models.DisposalLocation, 0, len(all))
	for _, l := range all {
		if l.Accepts(wasteType) {
			out = append(out, l)
		}
	}
	return out, nil
}

// UpdateLocation applies a location patch
func (s *DynamoStore) UpdateLocation(ctx context.Context, id int64, patch models.LocationPatch) (*models.DisposalLocation, error) {
	l, err := s.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(l)
	l.UpdatedAt = s.now().UTC()
	if err := replace(ctx, s, models.KindLocation, id, *l); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteLocation removes a disposal location
func (s *DynamoStore) DeleteLocation(ctx context.Context, id int64) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 pkAttr(models.Key(models.KindLocation, id).String()),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	return notFoundOnCondition(err, models.KindLocation, id)
}

// CreateTip stores a new recycling tip
func (s *DynamoStore) CreateTip(ctx context.Context, tip *models.RecyclingTip) error {
	id, err := s.nextID(ctx, models.KindTip)
	if err != nil {
		return err
	}
	t := *tip
	t.ID = id
	if err := putNew(ctx, s, models.KindTip, id, t); err != nil {
		return err
	}
	*tip = t
	return nil
}

// ListTips returns tips in id order, optionally filtered by category
func (s *DynamoStore) ListTips(ctx context.Context, category string, limit int) ([]models.RecyclingTip, error) {
	var extra []expression.ConditionBuilder
	if category != "" {
		extra = append(extra, expression.Name("Data.Category").Equal(expression.Value(category)))
	}
	tips, err := scanKind[models.RecyclingTip](ctx, s, models.KindTip, extra...)
	if err != nil {
		return nil, err
	}
	return limitSlice(tips, limit), nil
}

// CreateResource stores a new educational resource
func (s *DynamoStore) CreateResource(ctx context.Context, res *models.EducationalResource) error {
	id, err := s.nextID(ctx, models.KindResource)
	if err != nil {
		return err
	}
	r := *res
	r.ID = id
	if err := putNew(ctx, s, models.KindResource, id, r); err != nil {
		return err
	}
	*res = r
	return nil
}

// ListResources returns resources in id order, optionally filtered by type
func (s *DynamoStore) ListResources(ctx context.Context, resourceType string, limit int) ([]models.EducationalResource, error) {
	var extra []expression.ConditionBuilder
	if resourceType != "" {
		extra = append(extra, expression.Name("Data.ResourceType").Equal(expression.Value(resourceType)))
	}
	resources, err := scanKind[models.EducationalResource](ctx, s, models.KindResource, extra...)
	if err != nil {
		return nil, err
	}
	return limitSlice(resources, limit), nil
}

// SaveSnapshot stores a processing snapshot
func (s *DynamoStore) SaveSnapshot(ctx context.Context, snap *models.StatisticsSnapshot) error {
	id, err := s.nextID(ctx, models.KindStatistics)
	if err != nil {
		return err
	}
	sn := *snap
	sn.ID = id
	if sn.CreatedAt.IsZero() {
		sn.CreatedAt = s.now().UTC()
	}
	if err := putNew(ctx, s, models.KindStatistics, id, sn); err != nil {
		return err
	}
	*snap = sn
	return nil
}

// ListSnapshots returns snapshots newest first
func (s *DynamoStore) ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error) {
	all, err := scanKind[models.StatisticsSnapshot](ctx, s, models.KindStatistics)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return limitSlice(all, limit), nil
}
