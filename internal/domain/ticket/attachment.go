package ticket

import (
	"fmt"
	"time"

	"github.com/vforit/ticktrack/internal/shared/biztime"
)

// PlaceholderFilepath marks an attachment record whose file has not been
// uploaded yet. Creation and upload are separate steps: the record is
// created first with this placeholder, then a multipart upload supplies
// the file and the server-computed path replaces the placeholder.
const PlaceholderFilepath = "/"

type Attachment struct {
	id         uint
	ticketID   uint
	filename   string
	filepath   string
	uploadedAt time.Time
}

func NewAttachment(ticketID uint, filename string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if len(filename) > 200 {
		return nil, fmt.Errorf("filename exceeds maximum length of 200 characters")
	}

	return &Attachment{
		ticketID:   ticketID,
		filename:   filename,
		filepath:   PlaceholderFilepath,
		uploadedAt: biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	filename string,
	filepath string,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		filename:   filename,
		filepath:   filepath,
		uploadedAt: uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) Filepath() string {
	return a.filepath
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsUploaded reports whether the attachment's file has been stored.
func (a *Attachment) IsUploaded() bool {
	return a.filepath != PlaceholderFilepath
}

// MarkUploaded records the server-computed storage path after the file
// has been written. The path is never taken verbatim from the client.
func (a *Attachment) MarkUploaded(storagePath string) error {
	if len(storagePath) == 0 {
		return fmt.Errorf("storage path cannot be empty")
	}
	a.filepath = storagePath
	a.uploadedAt = biztime.NowUTC()
	return nil
}
