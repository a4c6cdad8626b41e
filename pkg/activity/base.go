// Package activity provides shared infrastructure for Temporal activity
// implementations: workflow context extraction and context-safe logging that
// degrade gracefully outside a real activity context, so the same code runs
// under the Temporal worker and in plain unit tests.
package activity

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
)

// WorkflowContext carries execution metadata extracted from the Temporal
// activity context, with stable fallback values for test environments.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	ActivityID string
}

// BaseActivities provides the common infrastructure embedded by every
// activity type.
type BaseActivities struct{}

// NewBaseActivities creates the shared activity infrastructure.
func NewBaseActivities() BaseActivities {
	return BaseActivities{}
}

// GetWorkflowContext extracts workflow execution details from the activity
// context. Outside a Temporal activity context, where activity.GetInfo
// panics, it substitutes deterministic test identifiers so activities behave
// identically under unit tests.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	var wfCtx WorkflowContext

	func() {
		defer func() {
			if r := recover(); r != nil {
				wfCtx.WorkflowID = "550e8400-e29b-41d4-a716-446655440000"
				wfCtx.RunID = "test-run-" + uuid.New().String()[:8]
				wfCtx.ActivityID = "test-activity"
			}
		}()

		info := activity.GetInfo(ctx)
		wfCtx.WorkflowID = info.WorkflowExecution.ID
		wfCtx.RunID = info.WorkflowExecution.RunID
		wfCtx.ActivityID = info.ActivityID
	}()

	return wfCtx
}

// RecordHeartbeat safely records a heartbeat in the Temporal activity
// context. Outside an activity context the call is ignored.
func (b *BaseActivities) RecordHeartbeat(ctx context.Context, details ...any) {
	RecordHeartbeat(ctx, details...)
}

// SafeLog logs at INFO level through the activity logger. Outside an
// activity context the call is ignored, so activity code can log freely
// without breaking tests.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		if recover() != nil {
			// Not an activity context, ignore
		}
	}()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogError logs at ERROR level through the activity logger. Outside an
// activity context the call is ignored.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		if recover() != nil {
			// Not an activity context, ignore
		}
	}()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}

// RecordHeartbeat safely records activity heartbeat with details. Outside an
// activity context the call is ignored.
func RecordHeartbeat(ctx context.Context, details ...any) {
	defer func() {
		if recover() != nil {
			// Not an activity context, ignore
		}
	}()
	activity.RecordHeartbeat(ctx, details...)
}
