package scheduling

// ListFilter holds the optional, independently combinable report filters.
// All supplied fields combine with AND.
type ListFilter struct {
	// ExactDate matches the stored date as a substring, so year or
	// year-month prefixes work ("2024-06").
	ExactDate string

	// ClientCPF is an exact match.
	ClientCPF string

	// ServiceName is a case-sensitive substring match on the joined
	// service name.
	ServiceName string

	// DateFrom / DateTo are inclusive bounds; either may be supplied alone.
	DateFrom string
	DateTo   string
}

// Clause is one parameterized predicate. User-supplied values only ever
// travel through Args, never through the SQL text.
type Clause struct {
	SQL  string
	Args []any
}

// Clauses composes the filter into its predicate list, AND-combined by the
// repository.
func (f ListFilter) Clauses() []Clause {
	var clauses []Clause
	if f.ExactDate != "" {
		clauses = append(clauses, Clause{
			SQL:  "agendamentos.data LIKE ?",
			Args: []any{"%" + f.ExactDate + "%"},
		})
	}
	if f.ClientCPF != "" {
		clauses = append(clauses, Clause{
			SQL:  "agendamentos.cpf_cliente = ?",
			Args: []any{f.ClientCPF},
		})
	}
	if f.ServiceName != "" {
		clauses = append(clauses, Clause{
			SQL:  "servicos.nome LIKE ?",
			Args: []any{"%" + f.ServiceName + "%"},
		})
	}
	switch {
	case f.DateFrom != "" && f.DateTo != "":
		clauses = append(clauses, Clause{
			SQL:  "agendamentos.data BETWEEN ? AND ?",
			Args: []any{f.DateFrom, f.DateTo},
		})
	case f.DateFrom != "":
		clauses = append(clauses, Clause{
			SQL:  "agendamentos.data >= ?",
			Args: []any{f.DateFrom},
		})
	case f.DateTo != "":
		clauses = append(clauses, Clause{
			SQL:  "agendamentos.data <= ?",
			Args: []any{f.DateTo},
		})
	}
	return clauses
}
