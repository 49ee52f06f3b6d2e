package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"mailtriage/internal/config"
	"mailtriage/internal/retry"
)

// completeWithRetry runs one prompt through the provider under the
// transient-fault retry policy. Parse failures never reach this layer; only
// model-call errors are retried here.
func completeWithRetry(ctx context.Context, svc CompletionService, policy retry.Policy, prompt string, params GenerationParams) (string, error) {
	var raw string
	err := retry.Do(ctx, policy, func() error {
		var callErr error
		raw, callErr = svc.GenerateCompletion(ctx, prompt, params)
		return callErr
	})
	return raw, err
}

// repairPrompt builds the corrective prompt embedding the model's own
// malformed prior output.
func repairPrompt(malformed string) string {
	return config.RepairPromptInstruction + "\n\n[ENTRADA]\n" + malformed
}

// generateJSON runs prompt through the provider and hands the raw output to
// decode, which extracts and validates the expected JSON object. When decode
// fails, exactly one repair attempt is made: a corrective completion
// embedding the malformed text, then one more decode. No further retries
// happen on content failures; the caller applies its fallback policy.
//
// The returned error is either a model-call failure (transient retries
// exhausted, propagated) or the final decode failure.
func generateJSON(ctx context.Context, svc CompletionService, policy retry.Policy, prompt string, params GenerationParams, decode func(raw string) error) error {
	raw, err := completeWithRetry(ctx, svc, policy, prompt, params)
	if err != nil {
		return err
	}

	derr := decode(raw)
	if derr == nil {
		return nil
	}
	log.WithError(derr).Warn("model output could not be normalized; requesting JSON repair")

	repaired, err := completeWithRetry(ctx, svc, policy, repairPrompt(raw), params)
	if err != nil {
		return err
	}
	return decode(repaired)
}
