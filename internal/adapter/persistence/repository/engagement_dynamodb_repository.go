package repository

import (
	"context"
	"errors"
	"strings"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultEngagementsTableName = "engagements"

// DynamoAPI is the subset of *dynamodb.Client used by the repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type engagementItem struct {
	ID         string `dynamodbav:"id"`
	ClientName string `dynamodbav:"client_name"`
	Type       string `dynamodbav:"type"`
	Tier       string `dynamodbav:"tier"`
	Consultant string `dynamodbav:"consultant,omitempty"`

	StartDate      string `dynamodbav:"start_date"`
	EndDate        string `dynamodbav:"end_date,omitempty"`
	DurationDays   int    `dynamodbav:"duration_days"`
	PauseStartedAt string `dynamodbav:"pause_started_at,omitempty"`
	PausedDays     int    `dynamodbav:"paused_days"`
	ClosureSigned  bool   `dynamodbav:"closure_signed"`

	ConsultingValue   string `dynamodbav:"consulting_value"`
	BonusValue        string `dynamodbav:"bonus_value"`
	CommissionPercent int    `dynamodbav:"commission_percent"`
	CommissionValue   string `dynamodbav:"commission_value"`

	Rating         *int   `dynamodbav:"rating,omitempty"`
	DeadlineMet    bool   `dynamodbav:"deadline_met"`
	CompletionDate string `dynamodbav:"completion_date,omitempty"`
	Bonused        bool   `dynamodbav:"bonused"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EngagementDynamoRepository persists Engagement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Money is stored as decimal strings so values round-trip exactly.

type EngagementDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb DynamoAPI, tableName string, log *zap.Logger) *EngagementDynamoRepository {
	if tableName == "" {
		tableName = DefaultEngagementsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EngagementDynamoRepository{ddb: ddb, tableName: tableName, log: log}
}

// List scans the table. Exact-match string constraints of the filter are
// pushed down as a FilterExpression; date containment is left to the caller.
func (r *EngagementDynamoRepository) List(ctx context.Context, filter analytics.FilterSpec) ([]entities.Engagement, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, values, names := scanFilter(filter); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeValues = values
		input.ExpressionAttributeNames = names
	}

	items := make([]entities.Engagement, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			r.log.Error("[engagement][dynamodb] scan failed", zap.String("table", r.tableName), zap.Error(err))
			return nil, err
		}
		for _, raw := range page.Items {
			var it engagementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromEngagementItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, e)
		}
	}
	return items, nil
}

func (r *EngagementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it)
}

func (r *EngagementDynamoRepository) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	av, err := attributevalue.MarshalMap(toEngagementItem(e))
	if err != nil {
		return entities.Engagement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	return e, nil
}

// Update writes the patch with a single UpdateItem call, so DynamoDB applies
// every field of it atomically.
func (r *EngagementDynamoRepository) Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		b := buildPatchUpdate(patch, now)
		return b.expression(), b.values, b.names
	})
}

func (r *EngagementDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *EngagementDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Engagement, error) {
	now := formatTime(timeNow())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Engagement{}, nil
	}
	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it)
}

func buildPatchUpdate(p entities.EngagementPatch, now string) *updateBuilder {
	b := newUpdateBuilder()
	if p.ClientName != nil {
		b.setString("client_name", *p.ClientName)
	}
	if p.Type != nil {
		b.setString("type", string(*p.Type))
	}
	if p.Tier != nil {
		b.setString("tier", *p.Tier)
	}
	if p.Consultant != nil {
		if *p.Consultant == "" {
			b.remove("consultant")
		} else {
			b.setString("consultant", *p.Consultant)
		}
	}
	if p.StartDate != nil {
		b.setString("start_date", formatTime(*p.StartDate))
	}
	if p.EndDate != nil {
		b.setString("end_date", formatTime(*p.EndDate))
	}
	if p.DurationDays != nil {
		b.setNumber("duration_days", *p.DurationDays)
	}
	if p.ClearPauseStartedAt {
		b.remove("pause_started_at")
	} else if p.PauseStartedAt != nil {
		b.setString("pause_started_at", formatTime(*p.PauseStartedAt))
	}
	if p.PausedDays != nil {
		b.setNumber("paused_days", *p.PausedDays)
	}
	if p.ClosureSigned != nil {
		b.setBool("closure_signed", *p.ClosureSigned)
	}
	if p.ConsultingValue != nil {
		b.setString("consulting_value", p.ConsultingValue.String())
	}
	if p.BonusValue != nil {
		b.setString("bonus_value", p.BonusValue.String())
	}
	if p.CommissionPercent != nil {
		b.setNumber("commission_percent", *p.CommissionPercent)
	}
	if p.CommissionValue != nil {
		b.setString("commission_value", p.CommissionValue.String())
	}
	if p.Rating != nil {
		if v, ok := p.Rating.Value(); ok {
			b.setNumber("rating", v)
		} else {
			b.remove("rating")
		}
	}
	if p.DeadlineMet != nil {
		b.setBool("deadline_met", *p.DeadlineMet)
	}
	if p.CompletionDate != nil {
		b.setString("completion_date", formatTime(*p.CompletionDate))
	}
	if p.Bonused != nil {
		b.setBool("bonused", *p.Bonused)
	}
	if p.Status != nil {
		b.setString("status", string(*p.Status))
	}
	if !p.UpdatedAt.IsZero() {
		now = formatTime(p.UpdatedAt)
	}
	b.setString("updated_at", now)
	return b
}

func scanFilter(f analytics.FilterSpec) (string, map[string]types.AttributeValue, map[string]string) {
	b := newUpdateBuilder()
	var conds []string
	add := func(field, value string) {
		if analytics.IsUnconstrained(value) {
			return
		}
		b.names["#"+field] = field
		b.values[":"+field] = &types.AttributeValueMemberS{Value: value}
		conds = append(conds, "#"+field+" = :"+field)
	}
	add("consultant", f.Consultant)
	add("type", f.Type)
	add("status", f.Status)
	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), b.values, b.names
}

func toEngagementItem(e entities.Engagement) engagementItem {
	return engagementItem{
		ID:                e.ID,
		ClientName:        e.ClientName,
		Type:              string(e.Type),
		Tier:              e.Tier,
		Consultant:        e.Consultant,
		StartDate:         formatTime(e.StartDate),
		EndDate:           formatTime(e.EndDate),
		DurationDays:      e.DurationDays,
		PauseStartedAt:    formatTimePtr(e.PauseStartedAt),
		PausedDays:        e.PausedDays,
		ClosureSigned:     e.ClosureSigned,
		ConsultingValue:   e.ConsultingValue.String(),
		BonusValue:        e.BonusValue.String(),
		CommissionPercent: e.CommissionPercent,
		CommissionValue:   e.CommissionValue.String(),
		Rating:            e.Rating.Ptr(),
		DeadlineMet:       e.DeadlineMet,
		CompletionDate:    formatTimePtr(e.CompletionDate),
		Bonused:           e.Bonused,
		Status:            string(e.Status),
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
}

func fromEngagementItem(it engagementItem) (entities.Engagement, error) {
	rating, err := entities.RatingFromPtr(it.Rating)
	if err != nil {
		return entities.Engagement{}, err
	}
	return entities.Engagement{
		ID:                it.ID,
		ClientName:        it.ClientName,
		Type:              entities.EngagementType(it.Type),
		Tier:              it.Tier,
		Consultant:        it.Consultant,
		StartDate:         parseTime(it.StartDate),
		EndDate:           parseTime(it.EndDate),
		DurationDays:      it.DurationDays,
		PauseStartedAt:    parseTimePtr(it.PauseStartedAt),
		PausedDays:        it.PausedDays,
		ClosureSigned:     it.ClosureSigned,
		ConsultingValue:   parseDecimal(it.ConsultingValue),
		BonusValue:        parseDecimal(it.BonusValue),
		CommissionPercent: it.CommissionPercent,
		CommissionValue:   parseDecimal(it.CommissionValue),
		Rating:            rating,
		DeadlineMet:       it.DeadlineMet,
		CompletionDate:    parseTimePtr(it.CompletionDate),
		Bonused:           it.Bonused,
		Status:            entities.EngagementStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}, nil
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
