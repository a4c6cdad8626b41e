// Package worker wires the collaborators together and registers the
// workflow and activities with a Temporal worker.
package worker

import (
	sdkactivity "go.temporal.io/sdk/activity"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahale/go-scoper/internal/extraction"
	"github.com/ahale/go-scoper/internal/generation"
	"github.com/ahale/go-scoper/internal/workflow"
	pkgactivity "github.com/ahale/go-scoper/pkg/activity"
)

// RegisterAll registers the proposal workflow and the collaborator
// activities with the Temporal worker. Must be called once during worker
// startup, before the worker runs; registration is not thread-safe.
func RegisterAll(w sdkworker.Worker, extractor extraction.Extractor, generator generation.Generator) {
	base := pkgactivity.NewBaseActivities()

	extractionActivities := extraction.NewActivities(base, extractor)
	generationActivities := generation.NewActivities(base, generator)

	w.RegisterWorkflow(workflow.ProposalWorkflow)

	// Activities register under the fixed names the workflow executes by.
	w.RegisterActivityWithOptions(extractionActivities.ExtractFacts,
		sdkactivity.RegisterOptions{Name: workflow.ExtractFactsActivity})
	w.RegisterActivityWithOptions(generationActivities.GenerateNarrative,
		sdkactivity.RegisterOptions{Name: workflow.GenerateNarrativeActivity})
}
