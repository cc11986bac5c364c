package db

import (
	"context"
	"fmt"
	"strings"
)

// jobSearchLimit caps every search result. The limit is deliberately a
// constant, not caller-configurable.
const jobSearchLimit = 10

// predicate pairs a WHERE fragment with its bind value. The fragment holds a
// %d verb where its placeholder number goes; numbers are assigned only at
// final assembly so no predicate depends on its position in the list.
type predicate struct {
	expr string
	arg  any
}

// collectPredicates consults each filter field independently, in a fixed
// order, and emits one predicate per populated field.
func collectPredicates(f JobFilter) []predicate {
	var preds []predicate

	if f.Title != nil {
		preds = append(preds, predicate{`LOWER(jp.title) LIKE LOWER($%d)`, "%" + *f.Title + "%"})
	}
	// Salary filtering is a range-overlap test against the posting's
	// [MinSalary, MaxSalary] band, not an exact bounds match.
	if f.MinSalary != nil {
		preds = append(preds, predicate{`jp."MaxSalary" >= $%d`, *f.MinSalary})
	}
	if f.MaxSalary != nil {
		preds = append(preds, predicate{`jp."MinSalary" <= $%d`, *f.MaxSalary})
	}
	if f.City != nil {
		preds = append(preds, predicate{`LOWER(ct.name) LIKE LOWER($%d)`, "%" + *f.City + "%"})
	}
	if f.Country != nil {
		preds = append(preds, predicate{`LOWER(cn.name) LIKE LOWER($%d)`, "%" + *f.Country + "%"})
	}
	if f.JobType != nil {
		preds = append(preds, predicate{`LOWER(jt.name) LIKE LOWER($%d)`, "%" + *f.JobType + "%"})
	}
	if f.JobCategory != nil {
		preds = append(preds, predicate{`LOWER(cat.name) LIKE LOWER($%d)`, "%" + *f.JobCategory + "%"})
	}
	if f.Currency != nil {
		preds = append(preds, predicate{`LOWER(curr.name) LIKE LOWER($%d)`, "%" + *f.Currency + "%"})
	}

	return preds
}

// buildJobSearchQuery assembles the parameterized search query for a filter
// set. Only postings currently accepting applications are considered; every
// populated filter contributes one ANDed condition.
func buildJobSearchQuery(f JobFilter, limit int) (string, []any) {
	base := `
	SELECT
		jp.id,
		jp.title
	FROM job_posts jp
	LEFT JOIN city ct ON jp.city_id = ct.id AND (ct."isDeleted" = false OR ct."isDeleted" IS NULL)
	LEFT JOIN country cn ON jp.country_id = cn.id AND (cn."isDeleted" = false OR cn."isDeleted" IS NULL)
	LEFT JOIN job_category cat ON jp.category_id = cat.id AND (cat."isDeleted" = false OR cat."isDeleted" IS NULL)
	LEFT JOIN job_type jt ON jp.job_type_id = jt.id AND (jt."isDeleted" = false OR jt."isDeleted" IS NULL)
	LEFT JOIN currency curr ON jp.currency_id = curr.id AND (curr."isDeleted" = false OR curr."isDeleted" IS NULL)`

	conditions := []string{`jp."IsAccepting" = true`}
	var args []any

	for _, p := range collectPredicates(f) {
		conditions = append(conditions, fmt.Sprintf(p.expr, len(args)+1))
		args = append(args, p.arg)
	}

	args = append(args, limit)
	query := fmt.Sprintf("%s\n\tWHERE %s\n\tORDER BY jp.created_at DESC\n\tLIMIT $%d",
		base, strings.Join(conditions, " AND "), len(args))

	return query, args
}

// SearchJobs runs a filtered job search and never returns an error: a query
// failure yields a result with the error description, an empty job list, and
// the filters that were attempted, which callers treat as a valid degraded
// result.
func (db *DB) SearchJobs(ctx context.Context, f JobFilter) JobSearchResult {
	applied := AppliedFilters{JobFilter: f, Limit: jobSearchLimit}
	query, args := buildJobSearchQuery(f, jobSearchLimit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return JobSearchResult{Jobs: []JobSummary{}, FiltersApplied: applied, Error: err.Error()}
	}
	defer rows.Close()

	jobs := []JobSummary{}
	for rows.Next() {
		var job JobSummary
		if err := rows.Scan(&job.JobID, &job.Title); err != nil {
			return JobSearchResult{Jobs: []JobSummary{}, FiltersApplied: applied, Error: err.Error()}
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return JobSearchResult{Jobs: []JobSummary{}, FiltersApplied: applied, Error: err.Error()}
	}

	return JobSearchResult{
		Jobs:           jobs,
		TotalFound:     len(jobs),
		FiltersApplied: applied,
	}
}
