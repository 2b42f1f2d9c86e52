package http

import "fulfillment/internal/core/domain/model/kernel"

// WebhookRequest is the inbound event from the NLU platform. Only the fields
// the fulfillment logic consumes are mapped; everything else in the payload
// is ignored.
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the classified intent, the parameter bag, and the
// output contexts of one user utterance.
type QueryResult struct {
	Intent         IntentRef       `json:"intent"`
	Parameters     map[string]any  `json:"parameters"`
	OutputContexts []OutputContext `json:"outputContexts"`
}

// IntentRef names the matched intent.
type IntentRef struct {
	DisplayName string `json:"displayName"`
}

// OutputContext is one active context, named by a resource path ending in
// "/contexts/<shortName>".
type OutputContext struct {
	Name string `json:"name"`
}

// SessionKey derives the session key from the first output context's
// resource path, the platform's documented carrier of the session id.
// Requests without contexts fall back to the default key.
func (r WebhookRequest) SessionKey() kernel.SessionKey {
	contexts := r.QueryResult.OutputContexts
	if len(contexts) == 0 {
		return kernel.DefaultSessionKey
	}
	return kernel.ExtractSessionKey(contexts[0].Name)
}

// HasActiveContext reports whether the short context name is present in the
// request's active-context set.
func (r WebhookRequest) HasActiveContext(name string) bool {
	for _, c := range r.QueryResult.OutputContexts {
		if kernel.ExtractContextName(c.Name) == name {
			return true
		}
	}
	return false
}

// WebhookResponse is the reply relayed to the user. The fulfillment text is
// the only field the service produces; no rich reply structures are used.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
