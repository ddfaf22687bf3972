package error

import "net/http"

// ConfigError signals a missing or unusable credential/setting discovered
// at the point of use, never at startup.
type ConfigError string

func (err ConfigError) Error() string {
	return string(err)
}

func (err ConfigError) ErrCode() string {
	return "CONFIG_ERROR"
}

func (err ConfigError) StatusCode() int {
	return http.StatusInternalServerError
}
