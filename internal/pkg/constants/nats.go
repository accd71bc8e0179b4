package constants

// NATS Subjects
const (
	// Token lifecycle events
	SubjectTokenCreated     = "token.created"
	SubjectTokenBound       = "token.bound"
	SubjectTokenDeactivated = "token.deactivated"
	SubjectTokenReactivated = "token.reactivated"
	SubjectTokenReset       = "token.reset"
	SubjectTokenDeleted     = "token.deleted"
)
