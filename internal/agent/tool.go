package agent

import (
	"context"

	"github.com/jonathan/job-chat-agent/internal/db"
	"github.com/jonathan/job-chat-agent/internal/llm"
)

// searchJobsTool exposes the job filter query builder as a model-callable
// tool. The handler never fails: query errors arrive inside the result
// payload, and the model sees them as structured error content. Retry budget
// is zero; a failed search is not re-run by this layer.
func searchJobsTool(searcher JobSearcher) llm.Tool {
	return llm.Tool{
		Name:        "search_jobs",
		Description: "Search job postings that are currently accepting applications. All filters are optional; results are the 10 newest matches as job IDs and titles.",
		Params: map[string]llm.Param{
			"title":        {Type: "string", Description: "Search in job title"},
			"min_salary":   {Type: "integer", Description: "Minimum salary filter"},
			"max_salary":   {Type: "integer", Description: "Maximum salary filter"},
			"city":         {Type: "string", Description: "Filter by city name"},
			"country":      {Type: "string", Description: "Filter by country name"},
			"job_type":     {Type: "string", Description: "Filter by job type, e.g. Full-time, Part-time, Contract"},
			"job_category": {Type: "string", Description: "Filter by job category"},
			"currency":     {Type: "string", Description: "Filter by salary currency name"},
		},
		Run: func(ctx context.Context, args map[string]any) any {
			return searcher.SearchJobs(ctx, filterFromArgs(args))
		},
	}
}

// filterFromArgs translates the model-supplied arguments into a JobFilter.
// Unknown or mistyped arguments are ignored rather than rejected.
func filterFromArgs(args map[string]any) db.JobFilter {
	return db.JobFilter{
		Title:       argString(args, "title"),
		MinSalary:   argInt(args, "min_salary"),
		MaxSalary:   argInt(args, "max_salary"),
		City:        argString(args, "city"),
		Country:     argString(args, "country"),
		JobType:     argString(args, "job_type"),
		JobCategory: argString(args, "job_category"),
		Currency:    argString(args, "currency"),
	}
}

func argString(args map[string]any, key string) *string {
	if v, ok := args[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// argInt accepts the numeric encodings function-call arguments arrive in;
// the genai decoder delivers JSON numbers as float64.
func argInt(args map[string]any, key string) *int {
	switch v := args[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	case int64:
		n := int(v)
		return &n
	}
	return nil
}
