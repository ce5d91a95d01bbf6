package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Error strings for the always-200 read/write envelopes.
const (
	errDemoData         = "Database connection failed - showing demo data"
	errConnectionFailed = "Database connection failed"
	errNotCreated       = "Database connection failed - expense not created"
	errNotUpdated       = "Database connection failed - status not updated"
)

// identityKeywords flag failures that are usually a cloud identity
// misconfiguration rather than a plain outage.
var identityKeywords = []string{"managed identity", "authentication", "login failed", "token"}

const identityRemediation = `

MANAGED IDENTITY FIX:
1. Ensure the managed identity is assigned to the app host
2. Grant the identity the required database role
3. Verify the AZURE_CLIENT_ID setting matches the managed identity client ID
4. If running locally, sign in with your cloud CLI and use its default credentials in DATABASE_URL`

// errorDetails builds the diagnostic string attached to failed envelopes:
// error type and message, plus a canned remediation hint when the message
// looks identity/authentication shaped.
func errorDetails(err error) string {
	details := fmt.Sprintf("Error Type: %T\nMessage: %s", err, err.Error())

	lower := strings.ToLower(err.Error())
	for _, keyword := range identityKeywords {
		if strings.Contains(lower, keyword) {
			details += identityRemediation
			break
		}
	}
	return details
}

// optionalQuery returns a pointer to the named query parameter, or nil when
// it is absent or empty, so the gateway can bind SQL NULL.
func optionalQuery(c *gin.Context, name string) *string {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	return &value
}
