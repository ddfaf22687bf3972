package error

import "net/http"

// UpstreamError carries a provider/platform failure (completion API,
// Cloud API transport) with the provider's error string intact.
type UpstreamError string

func (err UpstreamError) Error() string {
	return string(err)
}

func (err UpstreamError) ErrCode() string {
	return "UPSTREAM_ERROR"
}

func (err UpstreamError) StatusCode() int {
	return http.StatusInternalServerError
}
