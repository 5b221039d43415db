package dto

type UploadResponse struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
}
