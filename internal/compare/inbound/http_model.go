package inbound

import (
	"io"
)

type UploadResponse struct {
	UploadID               string  `json:"upload_id"`
	FolderPath             string  `json:"folder_path"`
	SourceFileName         string  `json:"source_file_name"`
	ComparedFileName       string  `json:"compared_file_name"`
	SortedSourceFilePath   *string `json:"sorted_source_file_path"`
	SortedComparedFilePath *string `json:"sorted_compared_file_path"`
	DifferenceFilePath     *string `json:"difference_file_path"`
}

func (UploadResponse) Message() string {
	return "upload processed"
}

type RecordResponse struct {
	UploadID         string `json:"upload_id"`
	FolderPath       string `json:"folder_path"`
	SourceFileName   string `json:"source_file_name"`
	ComparedFileName string `json:"compared_file_name"`
	CreatedAt        int64  `json:"created_at"`
}

// FileResponse streams a stored artifact as the raw response body.
type FileResponse struct {
	body io.ReadCloser
}

func (FileResponse) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (f FileResponse) WriteTo(w io.Writer) (int64, error) {
	defer f.body.Close()
	return io.Copy(w, f.body)
}
