package usecase

// File is one uploaded payload. A nil *File means the field was not sent.
type File struct {
	Name string
	Data []byte
}

type UploadInput struct {
	Source   *File
	Compared *File
	Sort     bool
	Compare  bool
}

// UploadResult describes the stored upload. Derived paths are nil when the
// corresponding stage was not requested.
type UploadResult struct {
	UploadID           string
	Location           string
	SourceFileName     string
	ComparedFileName   string
	SortedSourcePath   *string
	SortedComparedPath *string
	DifferencePath     *string
}
