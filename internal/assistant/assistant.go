// Package assistant runs a single conversation turn: validate the input,
// pick the delivery modality, call the provider gateway and record the
// normalized result in the conversation store.
package assistant

import (
	"context"

	"study-buddy/internal/guard"
	"study-buddy/internal/history"
	"study-buddy/internal/intent"
	"study-buddy/internal/llm"
)

type Assistant struct {
	guard      *guard.Guard
	classifier *intent.Classifier
	gateway    *llm.Service
}

func New(g *guard.Guard, c *intent.Classifier, gateway *llm.Service) *Assistant {
	return &Assistant{guard: g, classifier: c, gateway: gateway}
}

// HandleTurn processes one user input against the given store. A rejected
// input returns a *guard.ValidationError and mutates nothing. Provider
// failures do not return an error: they come back as an error-kind response
// and are appended to the history like any other turn.
func (a *Assistant) HandleTurn(ctx context.Context, store *history.Store, input string) (llm.Response, error) {
	if ok, reason := a.guard.Validate(input); !ok {
		return llm.Response{}, &guard.ValidationError{Reason: reason}
	}

	store.AppendUser(input)

	var resp llm.Response
	if a.classifier.IsImageRequest(input) {
		resp = a.gateway.GenerateImageResponse(ctx, input)
	} else {
		resp = a.gateway.GenerateTextResponse(ctx, store.APIContext(), store.Model())
	}

	store.AppendAssistant(history.FromResponse(resp))
	return resp, nil
}
