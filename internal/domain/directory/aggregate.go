package directory

// PositionCounts groups employees by exact position, in first-seen order.
func PositionCounts(employees []Employee) []PositionAggregate {
	index := make(map[string]int)
	out := make([]PositionAggregate, 0)
	for _, emp := range employees {
		i, ok := index[emp.Position]
		if !ok {
			i = len(out)
			index[emp.Position] = i
			out = append(out, PositionAggregate{Position: emp.Position})
		}
		out[i].Count++
	}
	return out
}

// LocationStats groups employees by exact location, in first-seen order.
// Any unknown salary in a group makes its total and average unknown.
func LocationStats(employees []Employee) []LocationAggregate {
	index := make(map[string]int)
	out := make([]LocationAggregate, 0)
	for _, emp := range employees {
		i, ok := index[emp.Location]
		if !ok {
			i = len(out)
			index[emp.Location] = i
			out = append(out, LocationAggregate{
				Location:    emp.Location,
				TotalSalary: NewAmount(0),
			})
		}
		group := &out[i]
		group.Employees = append(group.Employees, emp)
		group.TotalSalary = group.TotalSalary.Plus(emp.Salary)
		group.Count++
		if !emp.Salary.Known {
			group.UnknownSalaries++
		}
		group.AverageSalary = averageOf(group.TotalSalary, group.Count)
	}
	return out
}

// FindLocation returns the aggregate for one location.
func FindLocation(aggregates []LocationAggregate, location string) (LocationAggregate, error) {
	for _, agg := range aggregates {
		if agg.Location == location {
			return agg, nil
		}
	}
	return LocationAggregate{}, ErrLocationNotFound
}

// SummaryStats reports headcount, average and highest salary. An empty input
// yields zeros; any unknown salary makes average and max unknown.
func SummaryStats(employees []Employee) Summary {
	summary := Summary{Count: len(employees)}
	if len(employees) == 0 {
		summary.AverageSalary = NewAmount(0)
		summary.MaxSalary = NewAmount(0)
		return summary
	}

	total := NewAmount(0)
	highest := employees[0].Salary
	for _, emp := range employees {
		total = total.Plus(emp.Salary)
		if !emp.Salary.Known {
			summary.UnknownSalaries++
			highest = Amount{}
			continue
		}
		if highest.Known && emp.Salary.Value > highest.Value {
			highest = emp.Salary
		}
	}
	summary.AverageSalary = averageOf(total, len(employees))
	summary.MaxSalary = highest
	return summary
}
