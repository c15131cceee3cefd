package messages

import (
	"context"

	"github.com/google/uuid"

	"github.com/legaltender/intake/pkg/pagination"
)

// System defines the public contract for message domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Message], error)

	Find(ctx context.Context, id uuid.UUID) (*Message, error)
	Classify(ctx context.Context, cmd ClassifyCommand) (*Message, error)
	GenerateDraft(ctx context.Context, id uuid.UUID) (*Message, error)
	ProcessBulk(ctx context.Context, cmd BulkCommand) (*BulkResult, error)
	Decide(ctx context.Context, id uuid.UUID, cmd DecisionCommand) (*Message, error)
	Stats(ctx context.Context) (*Stats, error)
	Samples() []string
}
