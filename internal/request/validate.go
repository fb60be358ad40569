// Package request extracts the caller tenant and target episode from an
// inbound request and rejects requests missing either.
package request

import (
	"fmt"

	"podclip/internal/services"
)

// PathParamEpisodeID is the path parameter naming the target episode.
const PathParamEpisodeID = "episodeId"

// Authorizer carries the identity resolved by the authentication layer.
type Authorizer struct {
	TenantID string `json:"tenantId,omitempty"`
}

// RequestContext is the transport metadata attached to a request.
type RequestContext struct {
	Authorizer Authorizer `json:"authorizer"`
}

// Target identifies who is asking and which episode they are asking about.
type Target struct {
	TenantID  string
	EpisodeID string
}

// Validate checks the tenant before the episode ID, so a request missing both
// reports ErrUnauthenticated.
func Validate(pathParams map[string]string, rc RequestContext) (Target, error) {
	tenantID := rc.Authorizer.TenantID
	if tenantID == "" {
		return Target{}, fmt.Errorf("%w: authorizer did not supply a tenant id", services.ErrUnauthenticated)
	}
	episodeID := pathParams[PathParamEpisodeID]
	if episodeID == "" {
		return Target{}, fmt.Errorf("%w: path parameter %q is required", services.ErrMissingEpisodeId, PathParamEpisodeID)
	}
	return Target{TenantID: tenantID, EpisodeID: episodeID}, nil
}
