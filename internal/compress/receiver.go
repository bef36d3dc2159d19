package compress

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoFile is returned when a compression request carries no file field.
var ErrNoFile = errors.New("no file uploaded")

// UploadedFile describes one upload persisted to the incoming area. It is
// owned by the request that created it; the dispatcher unlinks it after
// the converter finishes, success or failure.
type UploadedFile struct {
	StoredName   string
	StoredPath   string
	OriginalName string
	Size         int64
	ReceivedAt   time.Time
}

// receiveFile persists the request's single file field to the incoming
// area under a collision-resistant stored name. Nothing is written to
// either storage area when the field is missing.
func (s *Service) receiveFile(w http.ResponseWriter, r *http.Request, field string) (*UploadedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFile, err)
	}
	defer file.Close()

	storedName := s.incoming.NewStoredName(header.Filename)
	path, size, err := s.incoming.Save(file, storedName)
	if err != nil {
		return nil, fmt.Errorf("persist upload: %w", err)
	}

	return &UploadedFile{
		StoredName:   storedName,
		StoredPath:   path,
		OriginalName: header.Filename,
		Size:         size,
		ReceivedAt:   time.Now(),
	}, nil
}
