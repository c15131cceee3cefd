package api

import (
	"github.com/legaltender/intake/internal/config"
	"github.com/legaltender/intake/pkg/openapi"
)

// buildSpec assembles the OpenAPI 3.1 document for the message endpoints
// and serializes it once at startup.
func buildSpec(cfg *config.Config) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Message": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"raw_text":       {Type: "string"},
				"author":         {Type: "string"},
				"header":         {Type: "string"},
				"task_type":      {Type: "string", Enum: []any{"records_request", "scheduling", "status_update", "other"}},
				"confidence":     {Type: "number"},
				"reasoning":      {Type: "string"},
				"quality_issues": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"status":         {Type: "string"},
				"agent_used":     {Type: "string"},
				"attempts":       {Type: "integer"},
				"draft":          openapi.SchemaRef("Draft"),
				"created_at":     {Type: "string", Format: "date-time"},
				"updated_at":     {Type: "string", Format: "date-time"},
			},
		},
		"Draft": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"subject":               {Type: "string"},
				"body":                  {Type: "string"},
				"extracted_info":        {Type: "object"},
				"providers":             {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"recommended_action":    {Type: "string"},
				"quality_score":         {Type: "number"},
				"requires_human_review": {Type: "boolean"},
				"quality_issues":        {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"attempt":               {Type: "integer"},
			},
		},
		"ClassifyCommand": {
			Type:     "object",
			Required: []string{"text"},
			Properties: map[string]*openapi.Schema{
				"text": {Type: "string"},
			},
		},
		"BulkCommand": {
			Type:     "object",
			Required: []string{"messages"},
			Properties: map[string]*openapi.Schema{
				"messages": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"BulkResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total":               {Type: "integer"},
				"successful":          {Type: "integer"},
				"failed":              {Type: "integer"},
				"elapsed_seconds":     {Type: "number"},
				"messages_per_second": {Type: "number"},
				"results":             {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
		},
		"DecisionCommand": {
			Type:     "object",
			Required: []string{"action"},
			Properties: map[string]*openapi.Schema{
				"action": {Type: "string", Enum: []any{"approve", "edit", "reject"}},
				"edited_draft": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"subject": {Type: "string"},
						"body":    {Type: "string"},
					},
				},
			},
		},
		"Stats": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total_messages": {Type: "integer"},
				"by_status":      {Type: "object"},
				"by_task_type":   {Type: "object"},
				"by_agent":       {Type: "object"},
				"pending_review": {Type: "integer"},
			},
		},
	})

	spec.Paths["/messages"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List messages",
			Tags:    []string{"messages"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Page size", false),
				openapi.QueryParam("search", "string", "Free-text search", false),
				openapi.QueryParam("status", "string", "Filter by lifecycle status", false),
				openapi.QueryParam("task_type", "string", "Filter by task category", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated messages", "Message"),
			},
		},
	}

	spec.Paths["/messages/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get a message",
			Tags:       []string{"messages"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Message id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("The message", "Message"),
				404: {Description: "Unknown message id"},
			},
		},
	}

	spec.Paths["/classify"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Classify a message",
			Tags:        []string{"triage"},
			RequestBody: openapi.RequestBodyJSON("ClassifyCommand", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Classified message", "Message"),
				400: {Description: "Empty message text"},
				502: {Description: "Classification capability failure"},
			},
		},
	}

	spec.Paths["/generate_draft/{id}"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Generate a draft response",
			Tags:       []string{"triage"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Message id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Message with draft", "Message"),
				400: {Description: "Category has no draft agent"},
				404: {Description: "Unknown message id"},
			},
		},
	}

	spec.Paths["/process_bulk"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Process a batch of messages",
			Tags:        []string{"triage"},
			RequestBody: openapi.RequestBodyJSON("BulkCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Bulk processing summary", "BulkResult"),
				400: {Description: "Empty or oversized batch"},
			},
		},
	}

	spec.Paths["/decision/{id}"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Apply a review decision",
			Tags:        []string{"review"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Message id")},
			RequestBody: openapi.RequestBodyJSON("DecisionCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated message", "Message"),
				400: {Description: "Invalid action or missing edited draft"},
				404: {Description: "Unknown message id"},
				409: {Description: "Conflicting decision on a final message"},
			},
		},
	}

	spec.Paths["/generate_test_messages"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Sample intake texts",
			Tags:    []string{"triage"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Sample texts"},
			},
		},
	}

	spec.Paths["/stats"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Triage activity counts",
			Tags:    []string{"review"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Aggregated counts", "Stats"),
			},
		},
	}

	return openapi.MarshalJSON(spec)
}
