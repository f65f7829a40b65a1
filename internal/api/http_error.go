// File: internal/api/http_error.go
package api

// HTTPError 全域錯誤響應模型
// swagger:model api.HTTPError
type HTTPError struct {
	// message 錯誤描述
	Message string `json:"message"`
}
