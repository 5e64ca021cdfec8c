package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"todos/internal/domains/todo/model"
)

const (
	listKeyCondition        = "#userId = :userId"
	findKeyCondition        = "#todoId = :todoId"
	updateFieldsExpression  = "SET #name = :name, #dueDate = :dueDate, #done = :done"
	setAttachmentExpression = "SET #attachmentUrl = :attachmentUrl"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the driver.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type dynamoDBImpl struct {
	client     DynamoDBAPI
	table      string
	ownerIndex string
	todoIndex  string
}

// NewDynamoDB stores items in a table keyed by userId (hash) and todoId
// (range). Listing queries ownerIndex (hash userId); Find queries todoIndex
// (hash todoId) for the owner and then reads the item from the table.
func NewDynamoDB(client DynamoDBAPI, table, ownerIndex, todoIndex string) Todo {
	return &dynamoDBImpl{
		client:     client,
		table:      table,
		ownerIndex: ownerIndex,
		todoIndex:  todoIndex,
	}
}

func itemKey(ownerID, todoID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		model.FieldUserID: &types.AttributeValueMemberS{Value: ownerID},
		model.FieldTodoID: &types.AttributeValueMemberS{Value: todoID},
	}
}

func (d *dynamoDBImpl) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	paginator := dynamodb.NewQueryPaginator(d.client, &dynamodb.QueryInput{
		TableName:              aws.String(d.table),
		IndexName:              aws.String(d.ownerIndex),
		KeyConditionExpression: aws.String(listKeyCondition),
		ExpressionAttributeNames: map[string]string{
			"#userId": model.FieldUserID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: ownerID},
		},
	})

	todos := []model.Todo{}

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query owner index: %w", err)
		}

		var batch []model.Todo
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}

		todos = append(todos, batch...)
	}

	return todos, nil
}

func (d *dynamoDBImpl) Get(ctx context.Context, ownerID, todoID string) (model.Todo, bool, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.table),
		Key:            itemKey(ownerID, todoID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return model.Todo{}, false, fmt.Errorf("get item: %w", err)
	}

	if len(out.Item) == 0 {
		return model.Todo{}, false, nil
	}

	var todo model.Todo
	if err := attributevalue.UnmarshalMap(out.Item, &todo); err != nil {
		return model.Todo{}, false, fmt.Errorf("decode item: %w", err)
	}

	return todo, true, nil
}

func (d *dynamoDBImpl) Find(ctx context.Context, todoID string) (model.Todo, bool, error) {
	out, err := d.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(d.table),
		IndexName:              aws.String(d.todoIndex),
		KeyConditionExpression: aws.String(findKeyCondition),
		ExpressionAttributeNames: map[string]string{
			"#todoId": model.FieldTodoID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":todoId": &types.AttributeValueMemberS{Value: todoID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return model.Todo{}, false, fmt.Errorf("query todo index: %w", err)
	}

	if len(out.Items) == 0 {
		return model.Todo{}, false, nil
	}

	owner, ok := out.Items[0][model.FieldUserID].(*types.AttributeValueMemberS)
	if !ok {
		return model.Todo{}, false, fmt.Errorf("todo index entry %s has no owner", todoID)
	}

	return d.Get(ctx, owner.Value, todoID)
}

func (d *dynamoDBImpl) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return model.Todo{}, fmt.Errorf("encode item: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("put item: %w", err)
	}

	return todo, nil
}

func (d *dynamoDBImpl) UpdateFields(ctx context.Context, ownerID, todoID string, update model.Update) error {
	_, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(d.table),
		Key:              itemKey(ownerID, todoID),
		UpdateExpression: aws.String(updateFieldsExpression),
		ExpressionAttributeNames: map[string]string{
			"#name":    model.FieldName,
			"#dueDate": model.FieldDueDate,
			"#done":    model.FieldDone,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":    &types.AttributeValueMemberS{Value: update.Name},
			":dueDate": &types.AttributeValueMemberS{Value: update.DueDate},
			":done":    &types.AttributeValueMemberBOOL{Value: update.Done},
		},
	})
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	return nil
}

func (d *dynamoDBImpl) SetAttachmentURL(ctx context.Context, ownerID, todoID, url string) error {
	_, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(d.table),
		Key:              itemKey(ownerID, todoID),
		UpdateExpression: aws.String(setAttachmentExpression),
		ExpressionAttributeNames: map[string]string{
			"#attachmentUrl": model.FieldAttachmentURL,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":attachmentUrl": &types.AttributeValueMemberS{Value: url},
		},
	})
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	return nil
}

func (d *dynamoDBImpl) Delete(ctx context.Context, ownerID, todoID string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       itemKey(ownerID, todoID),
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	return nil
}
