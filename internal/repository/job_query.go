package repository

import (
	"fmt"
	"strings"

	"jobport/internal/domain"
)

// buildJobFilter composes the WHERE clause for job listing. All filters
// are conjunctive; the free-text search is an OR over title and
// description inside its own group.
func buildJobFilter(filter *domain.JobFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("j.status = %s", arg(filter.Status)))
	}

	if filter.JobType != "" {
		conditions = append(conditions, fmt.Sprintf("j.job_type = %s", arg(filter.JobType)))
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("j.category = %s", arg(filter.Category)))
	}

	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(j.location) LIKE '%%' || LOWER(%s) || '%%'", arg(filter.Location)))
	}

	if len(filter.Skills) > 0 {
		placeholders := make([]string, 0, len(filter.Skills))
		for _, skill := range filter.Skills {
			placeholders = append(placeholders, arg(skill))
		}
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM json_each(j.skills) WHERE json_each.value IN (%s))",
			strings.Join(placeholders, ", "),
		))
	}

	if filter.Search != "" {
		p := arg(filter.Search)
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(j.title) LIKE '%%' || LOWER(%s) || '%%' OR LOWER(j.description) LIKE '%%' || LOWER(%s) || '%%')",
			p, p,
		))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// appendPagination adds the LIMIT/OFFSET tail after the filter args.
// Placeholders continue the filter's numbering.
func appendPagination(args []interface{}, filter *domain.JobFilter) (string, []interface{}) {
	offset := (filter.Page - 1) * filter.PageSize
	clause := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return clause, append(append([]interface{}{}, args...), filter.PageSize, offset)
}
