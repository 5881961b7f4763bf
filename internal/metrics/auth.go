package metrics

// Token operation results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// TrackTokenOperation records a token operation (issue, validate, revoke)
// and its result.
func (m *Metrics) TrackTokenOperation(operation, result string) {
	m.safeExecute("TrackTokenOperation", func() {
		m.TokenOperationsTotal.WithLabelValues(operation, result).Inc()
	})
}

// TrackAuthFailure records an authentication failure by reason
// (missing_token, invalid_token, revoked_token, user_not_found, bad_credentials).
func (m *Metrics) TrackAuthFailure(reason string) {
	m.safeExecute("TrackAuthFailure", func() {
		m.AuthFailuresTotal.WithLabelValues(reason).Inc()
	})
}
