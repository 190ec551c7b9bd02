package client

import (
	"context"
	"fmt"

	"github.com/mmrzaf/tablefaker/internal/domain"
)

type fakeSession struct {
	tables      map[string][]domain.ColumnInfo
	oids        []string
	lookups     int
	executions  []execution
	failOn      int
	failWith    error
	placeholder func(int, string) string
}

type execution struct {
	query  string
	params []interface{}
}

func newFakeSession() *fakeSession {
	s := &fakeSession{
		tables: map[string][]domain.ColumnInfo{},
		failOn: -1,
	}
	s.addTable("public.users",
		domain.ColumnInfo{Name: "id", Type: "int4"},
		domain.ColumnInfo{Name: "name", Type: "varchar"},
		domain.ColumnInfo{Name: "ip", Type: "inet"},
	)
	return s
}

func (s *fakeSession) addTable(name string, cols ...domain.ColumnInfo) {
	s.tables[name] = cols
	s.oids = append(s.oids, name)
}

func (s *fakeSession) TableOID(ctx context.Context, schema, table string) (domain.ObjectID, bool, error) {
	s.lookups++
	for i, name := range s.oids {
		if name == schema+"."+table {
			return domain.ObjectID(i + 1), true, nil
		}
	}
	return 0, false, nil
}

func (s *fakeSession) TableColumns(ctx context.Context, oid domain.ObjectID) ([]domain.ColumnInfo, error) {
	if oid < 1 || int(oid) > len(s.oids) {
		return nil, fmt.Errorf("unknown oid %d", oid)
	}
	return s.tables[s.oids[oid-1]], nil
}

func (s *fakeSession) Execute(ctx context.Context, query string, params []interface{}) (domain.Row, error) {
	if len(s.executions) == s.failOn {
		return nil, s.failWith
	}
	s.executions = append(s.executions, execution{query: query, params: params})
	record := make(domain.Row, len(params))
	for i, p := range params {
		record[i] = domain.Field{Name: fmt.Sprintf("c%d", i), Value: p}
	}
	return record, nil
}

func (s *fakeSession) Placeholder(position int, columnType string) string {
	if s.placeholder != nil {
		return s.placeholder(position, columnType)
	}
	return fmt.Sprintf("$%d::%s", position, columnType)
}

func (s *fakeSession) Close() error { return nil }

type countingEngine struct {
	calls int
}

func (e *countingEngine) Format(category string, options []interface{}) (interface{}, error) {
	e.calls++
	return category, nil
}
