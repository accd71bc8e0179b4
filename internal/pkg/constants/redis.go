package constants

// Redis key formats
const (
	// Local token cache
	KeyTokenCache      = "tokencache:%s"    // Format: tokencache:{code}
	KeyTokenCacheIndex = "tokencache:index" // List of codes, newest first

	// Session store
	KeyCurrentSession = "session:current"

	// Locally registered students
	KeyStudent      = "student:%s"    // Format: student:{reg_number}
	KeyStudentIndex = "student:index" // List of reg numbers, newest first
)
