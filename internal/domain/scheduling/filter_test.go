package scheduling

import (
	"reflect"
	"strings"
	"testing"
)

func TestListFilterClauses(t *testing.T) {
	tests := []struct {
		name     string
		filter   ListFilter
		wantSQL  []string
		wantArgs [][]any
	}{
		{
			name:   "empty filter has no clauses",
			filter: ListFilter{},
		},
		{
			name:     "exact date is a substring match",
			filter:   ListFilter{ExactDate: "2024-06"},
			wantSQL:  []string{"agendamentos.data LIKE ?"},
			wantArgs: [][]any{{"%2024-06%"}},
		},
		{
			name:     "client cpf is exact",
			filter:   ListFilter{ClientCPF: "52998224725"},
			wantSQL:  []string{"agendamentos.cpf_cliente = ?"},
			wantArgs: [][]any{{"52998224725"}},
		},
		{
			name:     "service name is a substring match",
			filter:   ListFilter{ServiceName: "Corte"},
			wantSQL:  []string{"servicos.nome LIKE ?"},
			wantArgs: [][]any{{"%Corte%"}},
		},
		{
			name:     "closed range uses BETWEEN",
			filter:   ListFilter{DateFrom: "2024-06-01", DateTo: "2024-06-30"},
			wantSQL:  []string{"agendamentos.data BETWEEN ? AND ?"},
			wantArgs: [][]any{{"2024-06-01", "2024-06-30"}},
		},
		{
			name:     "open-ended from",
			filter:   ListFilter{DateFrom: "2024-06-01"},
			wantSQL:  []string{"agendamentos.data >= ?"},
			wantArgs: [][]any{{"2024-06-01"}},
		},
		{
			name:     "open-ended to",
			filter:   ListFilter{DateTo: "2024-06-30"},
			wantSQL:  []string{"agendamentos.data <= ?"},
			wantArgs: [][]any{{"2024-06-30"}},
		},
		{
			name: "all report filters combine",
			filter: ListFilter{
				ClientCPF:   "52998224725",
				ServiceName: "Corte",
				DateFrom:    "2024-06-01",
				DateTo:      "2024-06-30",
			},
			wantSQL: []string{
				"agendamentos.cpf_cliente = ?",
				"servicos.nome LIKE ?",
				"agendamentos.data BETWEEN ? AND ?",
			},
			wantArgs: [][]any{
				{"52998224725"},
				{"%Corte%"},
				{"2024-06-01", "2024-06-30"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses := tt.filter.Clauses()
			if len(clauses) != len(tt.wantSQL) {
				t.Fatalf("got %d clauses, want %d: %v", len(clauses), len(tt.wantSQL), clauses)
			}
			for i, c := range clauses {
				if c.SQL != tt.wantSQL[i] {
					t.Fatalf("clause %d SQL = %q, want %q", i, c.SQL, tt.wantSQL[i])
				}
				if !reflect.DeepEqual(c.Args, tt.wantArgs[i]) {
					t.Fatalf("clause %d args = %v, want %v", i, c.Args, tt.wantArgs[i])
				}
			}
		})
	}
}

func TestListFilterClausesNeverInterpolate(t *testing.T) {
	// A hostile value must stay in the argument list.
	f := ListFilter{ExactDate: "x' OR '1'='1", ServiceName: "'; DROP TABLE servicos; --"}
	for _, c := range f.Clauses() {
		if strings.Contains(c.SQL, "DROP") || strings.Contains(c.SQL, "OR '1'") {
			t.Fatalf("user value leaked into SQL text: %q", c.SQL)
		}
	}
}
