package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// updateBuilder accumulates SET and REMOVE clauses of an UpdateItem call.
type updateBuilder struct {
	sets    []string
	removes []string
	values  map[string]types.AttributeValue
	names   map[string]string
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{},
	}
}

func (b *updateBuilder) set(field string, v types.AttributeValue) {
	b.names["#"+field] = field
	b.values[":"+field] = v
	b.sets = append(b.sets, fmt.Sprintf("#%s = :%s", field, field))
}

func (b *updateBuilder) setString(field, v string) {
	b.set(field, &types.AttributeValueMemberS{Value: v})
}

func (b *updateBuilder) setNumber(field string, v int) {
	b.set(field, &types.AttributeValueMemberN{Value: fmt.Sprint(v)})
}

func (b *updateBuilder) setBool(field string, v bool) {
	b.set(field, &types.AttributeValueMemberBOOL{Value: v})
}

func (b *updateBuilder) remove(field string) {
	b.names["#"+field] = field
	b.removes = append(b.removes, "#"+field)
}

func (b *updateBuilder) expression() string {
	parts := make([]string, 0, 2)
	if len(b.sets) > 0 {
		parts = append(parts, "SET "+strings.Join(b.sets, ", "))
	}
	if len(b.removes) > 0 {
		parts = append(parts, "REMOVE "+strings.Join(b.removes, ", "))
	}
	return strings.Join(parts, " ")
}

var timeNow = time.Now
