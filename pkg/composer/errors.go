package composer

import "errors"

// ErrSendFailed wraps the first delivery error of a Send.
var ErrSendFailed = errors.New("failed to deliver message")
