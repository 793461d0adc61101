package entity

// UploadRecord is the persisted metadata of one upload. It is never updated.
type UploadRecord struct {
	ID               int64
	UploadID         string
	Location         string
	SourceFileName   string
	ComparedFileName string
	CreatedAt        int64
}

// Files lists the artifact names that may exist for the upload.
func (r UploadRecord) Files(ext string) []string {
	return []string{
		r.SourceFileName,
		r.ComparedFileName,
		SortedName(r.SourceFileName),
		SortedName(r.ComparedFileName),
		DifferenceName(ext),
	}
}
