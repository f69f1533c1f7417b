package metrics

// Методы ниже безопасны для nil: при выключенных метриках сервис передает nil *Metrics

// IncBookingConflict учитывает отказ в бронировании по причине reason
func (m *Metrics) IncBookingConflict(reason string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(reason).Inc()
}

// IncBookingCreated учитывает созданное бронирование
func (m *Metrics) IncBookingCreated(status string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(status).Inc()
}

// IncTxRetry учитывает повтор сериализуемой транзакции
func (m *Metrics) IncTxRetry(db string) {
	if m == nil {
		return
	}
	m.DBTxRetries.WithLabelValues(db).Inc()
}
