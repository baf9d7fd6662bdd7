/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/config"
	"github.com/suparena/typebridge/datastore"
	"github.com/suparena/typebridge/document"
	tberrors "github.com/suparena/typebridge/errors"
)

// API is the subset of the DynamoDB client used by the store.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// DynamodbDataStore implements datastore.DataStore on a single DynamoDB table.
// Every item is an encoded document plus the key attributes of its index map.
type DynamodbDataStore struct {
	client    API
	tableName string
	exporter  *typebridge.Exporter
	logger    *zap.Logger
}

var _ datastore.DataStore = (*DynamodbDataStore)(nil)

// Option configures a DynamodbDataStore.
type Option func(*DynamodbDataStore)

// WithExporter converts through e instead of typebridge.Default().
func WithExporter(e *typebridge.Exporter) Option {
	return func(d *DynamodbDataStore) {
		if e != nil {
			d.exporter = e
		}
	}
}

// WithLogger sets the store's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *DynamodbDataStore) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDynamoDBClient initializes a DynamoDB client using static AWS credentials.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(awsRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a store on an existing client.
func NewDynamodbDataStore(client API, tableName string, opts ...Option) *DynamodbDataStore {
	d := &DynamodbDataStore{
		client:    client,
		tableName: tableName,
		exporter:  typebridge.Default(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromConfig creates the client from cfg's credentials and region and
// returns a store on cfg's table. When cfg.IndexMapFile is set, its index
// maps are loaded into the exporter's registry; the named types must already
// be registered.
func NewFromConfig(ctx context.Context, cfg config.Config, opts ...Option) (*DynamodbDataStore, error) {
	if cfg.TableName == "" {
		return nil, tberrors.NewValidationError("AWS_DDB_TABLE", "table name is required")
	}

	client, err := NewDynamoDBClient(ctx, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	d := NewDynamodbDataStore(client, cfg.TableName, opts...)
	if cfg.IndexMapFile != "" {
		if err := d.loadIndexMaps(cfg.IndexMapFile); err != nil {
			return nil, err
		}
	}
	d.logger.Info("DynamoDB client initialized",
		zap.String("table", cfg.TableName),
		zap.String("region", cfg.AWSRegion))
	return d, nil
}

func (d *DynamodbDataStore) loadIndexMaps(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open index maps: %w", err)
	}
	defer f.Close()

	n, err := d.exporter.Registry().LoadIndexMapsYAML(f)
	if err != nil {
		return err
	}
	d.logger.Debug("index maps loaded", zap.String("path", path), zap.Int("count", n))
	return nil
}

// GetOne retrieves the entity of the named type stored under key.
func (d *DynamodbDataStore) GetOne(ctx context.Context, typeName, key string) (anyvalue.Value, error) {
	t, pk, sk, err := datastore.ResolveKey(d.exporter, typeName, key)
	if err != nil {
		return anyvalue.Value{}, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		return anyvalue.Value{}, fmt.Errorf("GetItem error: %w", err)
	}
	if len(out.Item) == 0 {
		return anyvalue.Value{}, tberrors.NewNotFoundError(typeName, key)
	}

	doc, err := fromItem(out.Item)
	if err != nil {
		return anyvalue.Value{}, err
	}
	return d.exporter.DecodeAs(doc, t)
}

// Put encodes v and stores it with the key attributes expanded from its
// index map. Key attributes replace document fields of the same name.
func (d *DynamodbDataStore) Put(ctx context.Context, v anyvalue.Value) error {
	item, err := datastore.EncodeItem(d.exporter, v)
	if err != nil {
		return err
	}
	if _, _, err := item.PrimaryKey(); err != nil {
		return err
	}

	av, err := toItem(item.Attributes())
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", v.TypeName(), err)
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	d.logger.Debug("item stored", zap.String("type", v.TypeName()), zap.String("PK", item.Keys[datastore.PartitionKey]))
	return nil
}

// Delete removes the entity of the named type stored under key.
func (d *DynamodbDataStore) Delete(ctx context.Context, typeName, key string) error {
	_, pk, sk, err := datastore.ResolveKey(d.exporter, typeName, key)
	if err != nil {
		return err
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("delete condition failed: %w", err)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

func primaryKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		datastore.PartitionKey: &types.AttributeValueMemberS{Value: pk},
		datastore.SortKey:      &types.AttributeValueMemberS{Value: sk},
	}
}

// toItem converts a document object into DynamoDB attributes.
func toItem(obj document.Object) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(map[string]any(obj))
}

// fromItem converts DynamoDB attributes back into a document. Numbers come
// back as float64.
func fromItem(item map[string]types.AttributeValue) (document.Document, error) {
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return document.Document{}, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	doc, err := document.New(raw)
	if err != nil {
		return document.Document{}, tberrors.NewMalformedDocumentError("", err)
	}
	return doc, nil
}
