// Package ddb implementa la sesión de filas anchas sobre una única tabla DynamoDB.
//
// Cada fila lógica (tabla, partición, clustering) es un item con
// pk = "<tabla>#<partición>" y sk = clustering ("#" si la tabla no tiene
// clustering). Las columnas viajan en el atributo map "cols".
package ddb

import (
	"context"
	"errors"
	"iter"
	"time"

	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

const (
	attrPK    = "pk"
	attrSK    = "sk"
	attrTable = "tbl"

	noClustering = "#"
)

// API es el subconjunto de *dynamodb.Client que usa la sesión.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type Options struct {
	Table           string
	Consistency     rowstore.Consistency
	CreateIfMissing bool
	PageSize        int32
	CreateWait      time.Duration
}

type Session struct {
	api        API
	table      string
	consistent bool
	pageSize   int32
}

var _ rowstore.Session = (*Session)(nil)

type item struct {
	PK   string         `dynamodbav:"pk"`
	SK   string         `dynamodbav:"sk"`
	Tbl  string         `dynamodbav:"tbl"`
	Cols map[string]any `dynamodbav:"cols"`
}

// Open verifica que la tabla exista (creándola si corresponde) y devuelve la sesión.
func Open(ctx context.Context, api API, opts Options) (*Session, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.CreateWait <= 0 {
		opts.CreateWait = 2 * time.Minute
	}

	if err := ensureTable(ctx, api, opts); err != nil {
		return nil, err
	}

	return &Session{
		api:        api,
		table:      opts.Table,
		consistent: opts.Consistency.Strong(),
		pageSize:   opts.PageSize,
	}, nil
}

func ensureTable(ctx context.Context, api API, opts Options) error {
	_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(opts.Table)})
	if err == nil {
		return nil
	}

	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) || !opts.CreateIfMissing {
		return err
	}

	out, err := api.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(opts.Table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrPK), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrSK), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrPK), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(attrSK), KeyType: types.KeyTypeRange},
		},
	})
	if err != nil {
		// otra instancia la creó en paralelo
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return err
	}
	if out.TableDescription != nil && out.TableDescription.TableStatus == types.TableStatusActive {
		return nil
	}

	w := dynamodb.NewTableExistsWaiter(api)
	return w.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(opts.Table)}, opts.CreateWait)
}

func partitionKey(table, partition string) string {
	return table + "#" + partition
}

func sortKey(clustering string) string {
	if clustering == "" {
		return noClustering
	}
	return clustering
}

func keyAttrs(k rowstore.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: partitionKey(k.Table, k.Partition)},
		attrSK: &types.AttributeValueMemberS{Value: sortKey(k.Clustering)},
	}
}

func (s *Session) Get(ctx context.Context, key rowstore.Key) (rowstore.Row, bool, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            keyAttrs(key),
		ConsistentRead: aws.Bool(s.consistent),
	})
	if err != nil {
		return rowstore.Row{}, false, wrap("get", key.Table, err)
	}
	if len(out.Item) == 0 {
		return rowstore.Row{}, false, nil
	}

	row, err := decode(key.Table, key.Partition, out.Item)
	if err != nil {
		return rowstore.Row{}, false, err
	}
	return row, true, nil
}

func (s *Session) Put(ctx context.Context, row rowstore.Row) error {
	cols := row.Columns
	if cols == nil {
		cols = map[string]any{}
	}
	av, err := attributevalue.MarshalMap(item{
		PK:   partitionKey(row.Key.Table, row.Key.Partition),
		SK:   sortKey(row.Key.Clustering),
		Tbl:  row.Key.Table,
		Cols: cols,
	})
	if err != nil {
		return wrap("put", row.Key.Table, err)
	}

	if _, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	}); err != nil {
		return wrap("put", row.Key.Table, err)
	}
	return nil
}

func (s *Session) Delete(ctx context.Context, key rowstore.Key) error {
	if _, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       keyAttrs(key),
	}); err != nil {
		return wrap("delete", key.Table, err)
	}
	return nil
}

// Scan pagina con Query sobre la pk; cada página se pide recién cuando el
// consumidor terminó la anterior.
func (s *Session) Scan(ctx context.Context, table, partition string) iter.Seq2[rowstore.Row, error] {
	return func(yield func(rowstore.Row, error) bool) {
		expr, err := expression.NewBuilder().
			WithKeyCondition(expression.Key(attrPK).Equal(expression.Value(partitionKey(table, partition)))).
			Build()
		if err != nil {
			yield(rowstore.Row{}, wrap("scan", table, err))
			return
		}

		p := dynamodb.NewQueryPaginator(s.api, &dynamodb.QueryInput{
			TableName:                 aws.String(s.table),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ConsistentRead:            aws.Bool(s.consistent),
			Limit:                     aws.Int32(s.pageSize),
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				yield(rowstore.Row{}, wrap("scan", table, err))
				return
			}
			for _, av := range page.Items {
				row, err := decode(table, partition, av)
				if !yield(row, err) || err != nil {
					return
				}
			}
		}
	}
}

func (s *Session) ScanTable(ctx context.Context, table string) iter.Seq2[rowstore.Row, error] {
	return func(yield func(rowstore.Row, error) bool) {
		expr, err := expression.NewBuilder().
			WithFilter(expression.Name(attrTable).Equal(expression.Value(table))).
			Build()
		if err != nil {
			yield(rowstore.Row{}, wrap("scan_table", table, err))
			return
		}

		p := dynamodb.NewScanPaginator(s.api, &dynamodb.ScanInput{
			TableName:                 aws.String(s.table),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ConsistentRead:            aws.Bool(s.consistent),
			Limit:                     aws.Int32(s.pageSize),
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				yield(rowstore.Row{}, wrap("scan_table", table, err))
				return
			}
			for _, av := range page.Items {
				row, err := decode(table, "", av)
				if !yield(row, err) || err != nil {
					return
				}
			}
		}
	}
}

func (s *Session) Close() error { return nil }

// decode reconstruye la clave lógica desde pk/sk. partition vacío = derivarla de pk.
func decode(table, partition string, av map[string]types.AttributeValue) (rowstore.Row, error) {
	var it item
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return rowstore.Row{}, apperrors.NewMappingError(table, "cols", err.Error())
	}

	prefix := table + "#"
	if len(it.PK) < len(prefix) || it.PK[:len(prefix)] != prefix {
		return rowstore.Row{}, apperrors.NewMappingError(table, attrPK, "item belongs to another table")
	}
	if partition == "" {
		partition = it.PK[len(prefix):]
	}

	ck := it.SK
	if ck == noClustering {
		ck = ""
	}
	cols := it.Cols
	if cols == nil {
		cols = map[string]any{}
	}
	return rowstore.Row{
		Key:     rowstore.Key{Table: table, Partition: partition, Clustering: ck},
		Columns: cols,
	}, nil
}

func wrap(op, table string, err error) error {
	se := &apperrors.StorageError{
		Op:      op,
		Table:   table,
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		se.Code = apiErr.ErrorCode()
	}
	return se
}
