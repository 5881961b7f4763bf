package metrics

// IncrementEntityCreated increments the creation counter for an entity type
func (m *Metrics) IncrementEntityCreated(entityType string) {
	m.safeExecute("IncrementEntityCreated", func() {
		m.EntityCreatedTotal.WithLabelValues(entityType).Inc()
	})
}

// SetEntitiesTotal sets the active-entity gauge for an entity type
func (m *Metrics) SetEntitiesTotal(entityType string, count int64) {
	m.safeExecute("SetEntitiesTotal", func() {
		m.EntitiesTotal.WithLabelValues(entityType).Set(float64(count))
	})
}

// IncrementAuditRecord increments the audit record counter for an action
func (m *Metrics) IncrementAuditRecord(action string) {
	m.safeExecute("IncrementAuditRecord", func() {
		m.AuditRecordsTotal.WithLabelValues(action).Inc()
	})
}

// IncrementAuditFailure increments the audit failure counter
func (m *Metrics) IncrementAuditFailure() {
	m.safeExecute("IncrementAuditFailure", func() {
		m.AuditFailuresTotal.Inc()
	})
}

// IncrementLedgerEntry increments the portfolio ledger entry counter
func (m *Metrics) IncrementLedgerEntry() {
	m.safeExecute("IncrementLedgerEntry", func() {
		m.LedgerEntriesTotal.Inc()
	})
}
