package utils

// ResponseData is the response envelope for every REST endpoint that is
// not bound to the Cloud API webhook contract.
type ResponseData struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded panics on error so the recovery middleware can translate
// typed errors into HTTP responses.
func PanicIfNeeded(err any) {
	if err != nil {
		panic(err)
	}
}
