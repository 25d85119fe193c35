package usecase

import "context"

// ActivityRecorder abstracts the local activity journal so use cases stay
// storage-agnostic. Recording is fire-and-forget: implementations swallow
// and log failures instead of returning them, so a journal outage never
// affects a request.
type ActivityRecorder interface {
	Record(ctx context.Context, actor, action, subject string)
}
