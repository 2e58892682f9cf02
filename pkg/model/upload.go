package model

type UploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type UploadedFiles struct {
	URLs []UploadedFile `json:"urls"`
}

type UploadError struct {
	Error string `json:"error"`
}
