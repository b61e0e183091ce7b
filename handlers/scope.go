package handlers

import (
	"CarePoint/middlewares"
	"context"
)

// effectiveHospital resolves the facility a request may read. Admins pass
// the facility filter of their choice (empty means all facilities); every
// other role is pinned to the facility on their token.
func effectiveHospital(ctx context.Context, requested string) string {
	role, err := middlewares.ExtractUserRoleFromContext(ctx)
	if err == nil && role == "Admin" {
		return requested
	}
	return middlewares.ExtractUserHospitalFromContext(ctx)
}
