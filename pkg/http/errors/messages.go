package errors

// Default messages for the error envelope, used when no more specific
// message applies.
const (
	MsgBadRequest       = "Bad request!"
	MsgNotFound         = "Resource was not found!"
	MsgMethodNotAllowed = "Method not allowed!"
	MsgUnprocessable    = "Request could not be processed!"
	MsgInternalError    = "Internal server error!"
	MsgUpstreamError    = "Upstream dependency unavailable!"
)
