package error

// GenericError is implemented by every typed error in this package so the
// HTTP layer can map a panic or returned error to a response envelope.
type GenericError interface {
	error
	ErrCode() string
	StatusCode() int
}
