package metrics

// IncrementUserRegistered increments user registration counter
func (m *Metrics) IncrementUserRegistered() {
	m.safeExecute("IncrementUserRegistered", func() {
		m.UserRegisteredTotal.Inc()
	})
}

// IncrementUserDeleted increments user deletion counter
func (m *Metrics) IncrementUserDeleted() {
	m.safeExecute("IncrementUserDeleted", func() {
		m.UserDeletedTotal.Inc()
	})
}

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementCollaboratorAdded increments collaborator addition counter
func (m *Metrics) IncrementCollaboratorAdded() {
	m.safeExecute("IncrementCollaboratorAdded", func() {
		m.CollaboratorAddedTotal.Inc()
	})
}

// IncrementPasswordResetRequested increments reset request counter
func (m *Metrics) IncrementPasswordResetRequested() {
	m.safeExecute("IncrementPasswordResetRequested", func() {
		m.PasswordResetRequestedTotal.Inc()
	})
}

// IncrementPasswordResetCompleted increments completed reset counter
func (m *Metrics) IncrementPasswordResetCompleted() {
	m.safeExecute("IncrementPasswordResetCompleted", func() {
		m.PasswordResetCompletedTotal.Inc()
	})
}

// AddResetTokensExpired records tokens removed by the cleanup job
func (m *Metrics) AddResetTokensExpired(count int64) {
	m.safeExecute("AddResetTokensExpired", func() {
		m.ResetTokensExpiredTotal.Add(float64(count))
	})
}

// SetUsersTotal sets total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}
