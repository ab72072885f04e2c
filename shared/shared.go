package shared

import (
	"math"
	"reflect"
	"strings"

	"todolist/shared/constant"
	"todolist/shared/dto"
	"todolist/shared/timezone"
)

const cacheKeySeparator = ":"

// CalculateTotalPage returns the number of pages needed for total rows; an empty result has no pages.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 {
		return 0
	}

	if limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields converts the fields of a struct into a map of updated fields.
// Zero fields are skipped, so boolean resets must be written explicitly.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return StampFields(updatedFields, actor)
}

// StampFields records actor and the current time as the last modification of an update map.
func StampFields(fields map[string]any, actor string) map[string]any {
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = actor

	return fields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByIDs matches any of ids; an empty slice matches nothing.
func FilterByIDs(ids []string, field, table string) dto.FilterGroup {
	if len(ids) == 0 {
		return dto.FilterGroup{
			Filters: []any{dto.Filter{Operator: dto.FilterPlainQuery, Value: "1 = 0"}},
		}
	}

	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    ids,
				Operator: dto.FilterOperatorIn,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts into a namespaced redis key, e.g. user:username:jane.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}
