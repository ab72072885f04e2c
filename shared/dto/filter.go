package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq = "eq"
	FilterOperatorIn = "in"
	FilterPlainQuery = "plain"
)

const FilterGroupOperatorAnd = "AND"

// Filter is one condition on a table column, rendered with sqlx named arguments.
type Filter struct {
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	switch f.Operator {
	case FilterOperatorEq:
		args[f.Field] = f.Value

		return fmt.Sprintf("%s = :%s", f.column(), f.Field), args
	case FilterOperatorIn:
		return f.inClause(args)
	case FilterPlainQuery:
		query, _ := f.Value.(string)

		return "(" + query + ")", args
	default:
		return "", args
	}
}

// inClause binds every element of a slice value as field_0, field_1, ...
func (f Filter) inClause(args map[string]any) (string, map[string]any) {
	values := reflect.ValueOf(f.Value)
	if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
		args[f.Field] = f.Value

		return fmt.Sprintf("%s IN (:%s) ", f.column(), f.Field), args
	}

	named := make([]string, 0, values.Len())

	for idx := range values.Len() {
		name := fmt.Sprintf("%s_%d", f.Field, idx)
		args[name] = values.Index(idx).Interface()
		named = append(named, ":"+name)
	}

	return fmt.Sprintf("%s IN (%s) ", f.column(), strings.Join(named, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with Operator, AND when unset.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (g FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(g.Filters))

	for _, item := range g.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch filter := item.(type) {
		case Filter:
			where, arg = filter.GetWhereClause()
		case FilterGroup:
			where, arg = filter.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := g.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
