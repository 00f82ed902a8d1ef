package codes

// Process exit codes of scb
const (
	// Setup finished, or was aborted on purpose (declined overwrite, no depot)
	Success = 0
	// A filesystem or archive operation failed
	Failure = 1
	// Neither an extracted SDK nor an SDK archive was found
	SDKMissing = 2
	// An answer given through flags or config files is invalid
	InvalidInput = 3
)

// ExitCodes maps scb exit codes to their descriptions
var ExitCodes = map[int]string{
	Success:      "Success",
	Failure:      "Setup failed",
	SDKMissing:   "No Steamworks SDK or SDK archive found",
	InvalidInput: "Invalid answer",
}

// IsSuccess returns true if the exit code means the run ended as intended
func IsSuccess(code int) bool {
	return code == Success
}

// GetErrorMessage returns the message for a given exit code, or a generic message if unknown
func GetErrorMessage(code int) string {
	if msg, ok := ExitCodes[code]; ok {
		return msg
	}

	return "Unknown error"
}
